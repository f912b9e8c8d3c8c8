package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/dto"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/config"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

const testSecret = "test_secret"

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := models.SessionClaims{
		UserID: "user-1",
		Email:  "admin@example.com",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func sessionForTest(t *testing.T) *Session {
	t.Helper()
	parser := NewSessionParser(testSecret, 0)
	sess, err := parser.Parse(signedToken(t, time.Hour), "req-123")
	require.NoError(t, err)
	return sess
}

func clientForTest(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
}

func TestSessionParserRejectsExpiredToken(t *testing.T) {
	parser := NewSessionParser(testSecret, 0)
	_, err := parser.Parse(signedToken(t, -time.Hour), "req-123")
	require.ErrorIs(t, err, appErrors.ErrSessionExpired)
}

func TestSessionParserRejectsWrongSecret(t *testing.T) {
	parser := NewSessionParser("another_secret", 0)
	_, err := parser.Parse(signedToken(t, time.Hour), "req-123")
	require.Error(t, err)
	require.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestGetForwardsAuthAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":[{"email":"ana@example.com","name":"Ana"}]}`))
	}))
	defer srv.Close()

	sess := sessionForTest(t)
	customers, err := clientForTest(t, srv).ListCustomers(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "ana@example.com", customers[0].Email)
	require.Equal(t, "Bearer "+sess.Token(), gotAuth)
	require.Equal(t, "req-123", gotReqID)
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := sessionForTest(t)
	_, err := clientForTest(t, srv).ListCustomers(context.Background(), sess)
	require.ErrorIs(t, err, appErrors.ErrSessionExpired)

	select {
	case <-sess.Invalidated():
	default:
		t.Fatal("session was not invalidated")
	}
}

func TestExpiredSessionShortCircuitsBeforeTransport(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	parser := NewSessionParser(testSecret, time.Hour)
	sess, err := parser.Parse(signedToken(t, -time.Minute), "req-123")
	require.NoError(t, err)

	_, err = clientForTest(t, srv).ListCustomers(context.Background(), sess)
	require.ErrorIs(t, err, appErrors.ErrSessionExpired)
	require.False(t, called)
}

func TestMutateFoldsEnvelopeErrorIntoFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"ERROR","message":"correo duplicado"}`))
	}))
	defer srv.Close()

	res := clientForTest(t, srv).CreateCustomer(context.Background(), sessionForTest(t), dto.CreateCustomerRequest{
		Email: "ana@example.com",
		Name:  "Ana",
		TaxID: "B12345678",
	})
	require.False(t, res.OK())
	require.Equal(t, "correo duplicado", res.Message)
}

func TestMutateFoldsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res := clientForTest(t, srv).CreateCustomer(context.Background(), sessionForTest(t), dto.CreateCustomerRequest{
		Email: "ana@example.com",
		Name:  "Ana",
		TaxID: "B12345678",
	})
	require.False(t, res.OK())
	require.False(t, res.SessionExpired())
}

func TestMutateRejectsInvalidPayloadLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	res := clientForTest(t, srv).CreateCustomer(context.Background(), sessionForTest(t), dto.CreateCustomerRequest{
		Email: "not-an-email",
	})
	require.False(t, res.OK())
	require.False(t, called)
}

func TestMutateSuccessCarriesData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/customers/ana%40example.com/toggle-status", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":{"enabled":false}}`))
	}))
	defer srv.Close()

	res := clientForTest(t, srv).ToggleCustomerStatus(context.Background(), sessionForTest(t), "ana@example.com")
	require.True(t, res.OK())
	require.JSONEq(t, `{"enabled":false}`, string(res.Data))
}
