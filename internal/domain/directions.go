package domain

// TravelMode is a travel mode accepted by the external directions API.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeDriving TravelMode = "driving"
)

// DirectionsQuery carries the validated inputs of a directions lookup.
// Place IDs and waypoints are opaque strings passed through to the external
// mapping API.
type DirectionsQuery struct {
	OriginPlaceID      string
	DestinationPlaceID string

	// Waypoints is the raw waypoints query value, empty when not supplied.
	Waypoints string
}

// Directions is the result of a successful lookup: a compact polyline
// encoding of the route's coordinates. It is never persisted.
type Directions struct {
	Points string `json:"points"`
}
