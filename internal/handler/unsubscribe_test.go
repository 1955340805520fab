package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citystroll/backend/internal/domain"
	"github.com/citystroll/backend/internal/handler"
)

// ---- mock Unsubscriber -----------------------------------------------------

type mockUnsubscriber struct {
	unsubscribe func(ctx context.Context, authID, category string) (domain.User, error)
}

func (m *mockUnsubscriber) Unsubscribe(ctx context.Context, authID, category string) (domain.User, error) {
	return m.unsubscribe(ctx, authID, category)
}

// compile-time check: mockUnsubscriber must satisfy handler.Unsubscriber.
var _ handler.Unsubscriber = (*mockUnsubscriber)(nil)

// ---- helpers ---------------------------------------------------------------

// newUnsubscribeHandler wires a Server with only the unsubscribe service mocked.
func newUnsubscribeHandler(svc handler.Unsubscriber) http.Handler {
	return handler.NewServer(svc, nil, nil, nil).Routes()
}

// neverCalled fails the test if the service layer is reached.
func neverCalled(t *testing.T) *mockUnsubscriber {
	t.Helper()
	return &mockUnsubscriber{
		unsubscribe: func(context.Context, string, string) (domain.User, error) {
			t.Fatal("service must not be called")
			return domain.User{}, nil
		},
	}
}

// ---- GET /unsubscribeUser --------------------------------------------------

func TestUnsubscribeUser_200(t *testing.T) {
	svc := &mockUnsubscriber{
		unsubscribe: func(_ context.Context, authID, category string) (domain.User, error) {
			assert.Equal(t, "u-123", authID)
			assert.Equal(t, "promotions", category)
			return domain.User{AuthID: authID, UnsubscribedCategories: []string{category}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?authId=u-123&emailCategory=promotions", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "promotions", "confirmation must name the category")
}

func TestUnsubscribeUser_400_MissingAuthID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?emailCategory=promotions", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(neverCalled(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Auth ID is required")
}

func TestUnsubscribeUser_400_AuthIDTooLong(t *testing.T) {
	long := strings.Repeat("x", 50)
	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?authId="+long+"&emailCategory=promotions", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(neverCalled(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid Auth ID format")
}

func TestUnsubscribeUser_400_MissingCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?authId=u-123", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(neverCalled(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email category is required")
}

func TestUnsubscribeUser_404(t *testing.T) {
	svc := &mockUnsubscriber{
		unsubscribe: func(context.Context, string, string) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?authId=u-missing&emailCategory=promotions", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnsubscribeUser_500_GenericBody(t *testing.T) {
	svc := &mockUnsubscriber{
		unsubscribe: func(context.Context, string, string) (domain.User, error) {
			return domain.User{}, errors.New("pq: connection refused to 10.0.0.7")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/unsubscribeUser?authId=u-123&emailCategory=promotions", nil)
	rec := httptest.NewRecorder()
	newUnsubscribeHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Store details are logged, never shown to the caller.
	assert.Equal(t, "Internal Server Error\n", rec.Body.String())
}
