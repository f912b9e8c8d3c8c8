package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/form"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/notify"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/upstream"
	"github.com/creparitsdev-collab/SGI-FRONT-sub001/internal/validation"
	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

func customerSchema() *form.Schema {
	return &form.Schema{
		Entity: "customers",
		Fields: []form.Field{
			{Name: "name", Label: "Nombre", Rules: []validation.Rule{validation.Required, validation.OnlyLetters}, RequiredOn: []form.Action{form.ActionCreate, form.ActionUpdate}},
			{Name: "email", Label: "Correo", Rules: []validation.Rule{validation.Required, validation.ValidEmail}, RequiredOn: []form.Action{form.ActionCreate, form.ActionUpdate}},
		},
	}
}

func newEngineForTest(cfg Config) *Engine {
	if cfg.Schema == nil {
		cfg.Schema = customerSchema()
	}
	return New(cfg, notify.New(zap.NewNop(), nil), zap.NewNop())
}

func cleanForm(action form.Action, original map[string]string) *form.Form {
	f := form.New(customerSchema(), action, original)
	f.SetField("name", "Ana Pérez")
	f.SetField("email", "ana@example.com")
	return f
}

func TestPrepareInvalidDraftNeverFetches(t *testing.T) {
	fetched := false
	engine := newEngineForTest(Config{
		DuplicateKeys: []DuplicateKey{{Field: "email", Message: notify.MsgDuplicateEmail}},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]Candidate, error) {
			fetched = true
			return nil, nil
		},
	})

	f := form.New(customerSchema(), form.ActionCreate, nil)
	f.SetField("email", "broken")

	out := engine.Prepare(context.Background(), nil, f, "")
	require.False(t, out.Submittable)
	require.Nil(t, out.Confirmation)
	require.Contains(t, out.FieldErrors["name"], validation.MsgRequired)
	require.Contains(t, out.FieldErrors["email"], validation.MsgInvalidEmail)
	require.False(t, fetched)
}

func TestPrepareDuplicateBlocksConfirmation(t *testing.T) {
	engine := newEngineForTest(Config{
		DuplicateKeys: []DuplicateKey{{Field: "email", Message: notify.MsgDuplicateEmail}},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]Candidate, error) {
			return []Candidate{
				{ID: "other", Values: map[string]string{"email": "  ANA@example.com "}},
			}, nil
		},
	})

	out := engine.Prepare(context.Background(), nil, cleanForm(form.ActionCreate, nil), "")
	require.False(t, out.Submittable)
	require.Nil(t, out.Confirmation)
	require.Equal(t, []string{notify.MsgDuplicateEmail}, out.FieldErrors["email"])
	require.NotNil(t, out.Toast)
	require.Equal(t, notify.LevelWarning, out.Toast.Level)
	require.Equal(t, notify.MsgDuplicateEmail, out.Toast.Title)
}

func TestPrepareUpdateSkipsOwnRecord(t *testing.T) {
	engine := newEngineForTest(Config{
		DuplicateKeys: []DuplicateKey{{Field: "email", Message: notify.MsgDuplicateEmail}},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]Candidate, error) {
			return []Candidate{
				{ID: "rec-1", Values: map[string]string{"email": "ana@example.com"}},
			}, nil
		},
	})

	out := engine.Prepare(context.Background(), nil, cleanForm(form.ActionUpdate, nil), "rec-1")
	require.True(t, out.Submittable)
	require.NotNil(t, out.Confirmation)
	require.Empty(t, out.FieldErrors["email"])
}

func TestPrepareFetchFailureEmitsCouldNotVerify(t *testing.T) {
	engine := newEngineForTest(Config{
		DuplicateKeys: []DuplicateKey{{Field: "email", Message: notify.MsgDuplicateEmail}},
		Fetch: func(ctx context.Context, sess *upstream.Session) ([]Candidate, error) {
			return nil, errors.New("boom")
		},
	})

	out := engine.Prepare(context.Background(), nil, cleanForm(form.ActionCreate, nil), "")
	require.True(t, out.Submittable)
	require.Nil(t, out.Confirmation)
	require.NotNil(t, out.Toast)
	require.Equal(t, notify.LevelError, out.Toast.Level)
	require.Equal(t, notify.MsgCouldNotVerify, out.Toast.Title)
	require.Empty(t, out.FieldErrors["email"])
}

func TestPrepareCleanCreateBuildsConfirmation(t *testing.T) {
	engine := newEngineForTest(Config{})

	out := engine.Prepare(context.Background(), nil, cleanForm(form.ActionCreate, nil), "")
	require.True(t, out.Submittable)
	require.NotNil(t, out.Confirmation)
	require.Equal(t, "customers", out.Confirmation.Entity)
	require.Equal(t, form.ActionCreate, out.Confirmation.Action)
	require.Len(t, out.Confirmation.Fields, 2)
	for _, field := range out.Confirmation.Fields {
		require.Empty(t, field.Before)
	}
}

func TestPrepareUpdateConfirmationCarriesBefore(t *testing.T) {
	engine := newEngineForTest(Config{})

	original := map[string]string{"name": "Ana", "email": "old@example.com"}
	out := engine.Prepare(context.Background(), nil, cleanForm(form.ActionUpdate, original), "rec-1")
	require.NotNil(t, out.Confirmation)

	byName := map[string]ConfirmationField{}
	for _, field := range out.Confirmation.Fields {
		byName[field.Name] = field
	}
	require.Equal(t, "old@example.com", byName["email"].Before)
	require.Equal(t, "ana@example.com", byName["email"].After)
}

func TestCommitSuccessResetsAndSignalsRefresh(t *testing.T) {
	engine := newEngineForTest(Config{
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			return upstream.Success(json.RawMessage(`{"email":"ana@example.com"}`))
		},
		Describe: func(draft map[string]string) (string, string) {
			return "el cliente " + draft["name"], draft["email"]
		},
	})

	f := cleanForm(form.ActionCreate, nil)
	out, err := engine.Commit(context.Background(), nil, f, "", "creó")
	require.NoError(t, err)
	require.True(t, out.Result.OK())
	require.True(t, out.Refresh)
	require.True(t, out.Close)
	require.Equal(t, notify.LevelSuccess, out.Toast.Level)
	require.Equal(t, "Se creó el cliente Ana Pérez correctamente", out.Toast.Title)
	require.Empty(t, f.Value("name"))
}

func TestCommitFailureKeepsDraft(t *testing.T) {
	engine := newEngineForTest(Config{
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			return upstream.Failure(appErrors.Clone(appErrors.ErrUpstream, "backend rejected"))
		},
	})

	f := cleanForm(form.ActionCreate, nil)
	out, err := engine.Commit(context.Background(), nil, f, "", "creó")
	require.NoError(t, err)
	require.False(t, out.Result.OK())
	require.False(t, out.Refresh)
	require.False(t, out.Close)
	require.Equal(t, notify.LevelError, out.Toast.Level)
	require.Equal(t, "backend rejected", out.Toast.Description)
	require.Equal(t, "Ana Pérez", f.Value("name"))
}

func TestCommitInFlightGuard(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var startedOnce sync.Once
	engine := newEngineForTest(Config{
		Submit: func(ctx context.Context, sess *upstream.Session, draft map[string]string, action form.Action, recordID string) *upstream.Result {
			startedOnce.Do(func() { close(started) })
			<-release
			return upstream.Success(nil)
		},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		out, err := engine.Commit(context.Background(), nil, cleanForm(form.ActionCreate, nil), "rec-1", "creó")
		require.NoError(t, err)
		require.True(t, out.Result.OK())
	}()

	<-started
	_, err := engine.Commit(context.Background(), nil, cleanForm(form.ActionCreate, nil), "rec-1", "creó")
	require.ErrorIs(t, err, appErrors.ErrSubmitInFlight)

	close(release)
	wg.Wait()

	// the guard clears once the first submission finishes
	out, err := engine.Commit(context.Background(), nil, cleanForm(form.ActionCreate, nil), "rec-1", "creó")
	require.NoError(t, err)
	require.True(t, out.Result.OK())
}
