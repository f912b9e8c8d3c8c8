package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/models"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/config"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

const testSecret = "test_secret"

func sessionForTest(t *testing.T) *upstream.Session {
	t.Helper()
	claims := models.SessionClaims{
		UserID: "user-1",
		Role:   "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	sess, err := upstream.NewSessionParser(testSecret, 0).Parse(token, "req-1")
	require.NoError(t, err)
	return sess
}

func registryForTest(t *testing.T, srv *httptest.Server) *Registry {
	t.Helper()
	client := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
	return NewRegistry(client, notify.New(zap.NewNop(), nil), zap.NewNop())
}

func customerDraft() map[string]string {
	return map[string]string{
		"name":  "Ana Pérez",
		"email": "ana@example.com",
		"nif":   "B12345678",
	}
}

func TestRegistryNamesCoverEveryScreen(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	names := registryForTest(t, srv).Names()
	require.Equal(t, []string{
		"catalogues",
		"customers",
		"equipment",
		"equipment-categories",
		"maintenance",
		"maintenance-providers",
		"maintenance-types",
		"products",
		"scheduled-maintenance",
	}, names)
}

func TestPrepareCustomerDuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":[{"email":"ANA@example.com","name":"Ana","nif":"X99999999"}]}`))
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Prepare(context.Background(), sessionForTest(t), "customers", WorkflowRequest{
		Action: form.ActionCreate,
		Draft:  customerDraft(),
	})
	require.NoError(t, err)
	require.False(t, out.Submittable)
	require.Nil(t, out.Confirmation)
	require.Equal(t, []string{notify.MsgDuplicateEmail}, out.FieldErrors["email"])
}

func TestPrepareAndCommitCustomerCreate(t *testing.T) {
	var created bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers":
			w.Write([]byte(`{"type":"SUCCESS","data":[]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/customers":
			created = true
			w.Write([]byte(`{"type":"SUCCESS","data":{"email":"ana@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	sess := sessionForTest(t)
	req := WorkflowRequest{Action: form.ActionCreate, Draft: customerDraft()}

	prep, err := reg.Prepare(context.Background(), sess, "customers", req)
	require.NoError(t, err)
	require.True(t, prep.Submittable)
	require.NotNil(t, prep.Confirmation)

	out, err := reg.Commit(context.Background(), sess, "customers", req)
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, out.Result.OK())
	require.True(t, out.Close)
	require.Equal(t, "Se creó el cliente Ana Pérez correctamente", out.Toast.Title)
	require.Equal(t, "ana@example.com", out.Toast.Description)
}

func TestCommitUpdateUsesRecordRoute(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":{}}`))
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Commit(context.Background(), sessionForTest(t), "customers", WorkflowRequest{
		Action:   form.ActionUpdate,
		RecordID: "ana@example.com",
		Draft:    customerDraft(),
		Original: customerDraft(),
	})
	require.NoError(t, err)
	require.True(t, out.Result.OK())
	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/customers/ana%40example.com", gotPath)
	require.Equal(t, "Se actualizó el cliente Ana Pérez correctamente", out.Toast.Title)
}

func TestRegistryRejectsUnknownEntity(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	reg := registryForTest(t, srv)
	_, err := reg.Prepare(context.Background(), sessionForTest(t), "ghosts", WorkflowRequest{Action: form.ActionCreate, Draft: map[string]string{}})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, _, err = reg.List(context.Background(), sessionForTest(t), "ghosts")
	require.Error(t, err)
}

func TestRegistryRejectsReadAction(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	reg := registryForTest(t, srv)
	_, err := reg.Prepare(context.Background(), sessionForTest(t), "customers", WorkflowRequest{Action: form.ActionRead, Draft: map[string]string{}})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduledMaintenanceRejectsCreate(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Commit(context.Background(), sessionForTest(t), "scheduled-maintenance", WorkflowRequest{
		Action: form.ActionCreate,
		Draft: map[string]string{
			"frequencyType":       "MONTHLY",
			"frequencyValue":      "3",
			"nextMaintenanceDate": "2027-01-15T00:00:00",
		},
	})
	require.NoError(t, err)
	require.False(t, out.Result.OK())
}

func TestScheduledMaintenanceUpdateValidatesRecurrence(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Commit(context.Background(), sessionForTest(t), "scheduled-maintenance", WorkflowRequest{
		Action:   form.ActionUpdate,
		RecordID: "8c5e9f6a-1b2c-4d3e-9f8a-7b6c5d4e3f2a",
		Draft: map[string]string{
			"frequencyType":       "MONTHLY",
			"frequencyValue":      "200",
			"nextMaintenanceDate": "2027-01-15T00:00:00",
		},
	})
	require.NoError(t, err)
	require.False(t, out.Result.OK())
	require.False(t, called)
}

func TestScheduledMaintenanceToastCarriesNextOccurrence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":{}}`))
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Commit(context.Background(), sessionForTest(t), "scheduled-maintenance", WorkflowRequest{
		Action:   form.ActionUpdate,
		RecordID: "8c5e9f6a-1b2c-4d3e-9f8a-7b6c5d4e3f2a",
		Draft: map[string]string{
			"frequencyType":       "MONTHLY",
			"frequencyValue":      "3",
			"nextMaintenanceDate": "2027-03-01T00:00:00",
		},
	})
	require.NoError(t, err)
	require.True(t, out.Result.OK())
	require.Equal(t, "Cada: 3 meses, siguiente: 2027-06-01", out.Toast.Description)
}

func TestToggleEmitsStatusToast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"SUCCESS","data":{}}`))
	}))
	defer srv.Close()

	reg := registryForTest(t, srv)
	out, err := reg.Toggle(context.Background(), sessionForTest(t), "customers", "ana@example.com")
	require.NoError(t, err)
	require.True(t, out.Result.OK())
	require.Equal(t, "Se cambió el estado de el cliente correctamente", out.Toast.Title)
}

func TestFrequencyTypeConversion(t *testing.T) {
	require.Equal(t, models.FrequencyMonthly, frequencyType("MONTHLY"))
	require.Equal(t, models.FrequencyType("HOURLY"), frequencyType("HOURLY"))
}
