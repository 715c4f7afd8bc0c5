package repo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(NewMemoryAdapter(), zap.NewNop())
	require.NoError(t, s.Open(context.Background()))
	// Start from an empty dataset so tests control every record.
	require.NoError(t, s.Import(context.Background(), &Dataset{
		Divisions: []model.Division{},
		Projects:  []model.Project{},
		Team:      []model.TeamMember{},
	}))
	return s
}

func TestOpenSeedsOnFirstRun(t *testing.T) {
	s := NewStore(NewMemoryAdapter(), zap.NewNop())
	require.NoError(t, s.Open(context.Background()))

	assert.NotEmpty(t, s.ListDivisions())
	assert.NotEmpty(t, s.ListProjects())
	assert.NotEmpty(t, s.ListClientProjects())

	// Seeded client projects already satisfy the derivation rule.
	for _, p := range s.ListClientProjects() {
		if len(p.Tasks) > 0 {
			assert.Equal(t, model.ProgressFromTasks(p.Tasks), p.Progress, p.ID)
		}
	}
}

func TestCreateAppliesDefaultsAndID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	div, err := s.CreateDivision(ctx, map[string]any{"title": "Films"})
	require.NoError(t, err)
	assert.NotEmpty(t, div.ID)
	assert.Contains(t, div.ID, "div_")
	assert.Equal(t, "Films", div.Title)
	assert.NotEmpty(t, div.IconName)

	// A caller-provided id is honored.
	div2, err := s.CreateDivision(ctx, map[string]any{"id": "div_custom", "title": "Games"})
	require.NoError(t, err)
	assert.Equal(t, "div_custom", div2.ID)

	// But a duplicate id is rejected.
	_, err = s.CreateDivision(ctx, map[string]any{"id": "div_custom", "title": "Again"})
	assert.True(t, IsValidation(err))
}

func TestCreateValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		create  func() error
		wantMsg string
	}{
		{
			name: "division without title",
			create: func() error {
				_, err := s.CreateDivision(ctx, map[string]any{})
				return err
			},
			wantMsg: "title is required",
		},
		{
			name: "client project without projectId",
			create: func() error {
				_, err := s.CreateClientProject(ctx, map[string]any{"name": "X"})
				return err
			},
			wantMsg: "name and projectId are required",
		},
		{
			name: "invoice missing fields",
			create: func() error {
				_, err := s.CreateClientInvoice(ctx, map[string]any{"projectId": "p1"})
				return err
			},
			wantMsg: "projectId, amount, currency, issuedOn, and dueOn are required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.create()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestUpdateShallowMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateClientProject(ctx, map[string]any{
		"name":      "Brand Relaunch",
		"projectId": "p1",
		"summary":   "original summary",
		"team":      []string{"ana", "ben"},
	})
	require.NoError(t, err)

	updated, err := s.UpdateClientProject(ctx, p.ID, map[string]any{
		"summary": "new summary",
	})
	require.NoError(t, err)
	assert.Equal(t, "new summary", updated.Summary)
	assert.Equal(t, "Brand Relaunch", updated.Name, "untouched fields survive a patch")
	assert.Equal(t, []string{"ana", "ben"}, updated.Team)

	// The id cannot be patched away.
	updated, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"id": "client_proj_other"})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)

	_, err = s.UpdateClientProject(ctx, "client_proj_missing", map[string]any{"summary": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressDerivedOnEveryPath(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Create with tasks: stored progress is overridden by derivation.
	p, err := s.CreateClientProject(ctx, map[string]any{
		"name":      "App Build",
		"projectId": "p1",
		"progress":  7,
		"tasks": []model.ClientProjectTask{
			{ID: "t1", Title: "design", Status: model.TaskDone},
			{ID: "t2", Title: "build", Status: model.TaskTodo},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Progress)

	// Patching unrelated fields keeps the derived value.
	p, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"summary": "wip"})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Progress)

	// Patching progress directly is a no-op while tasks exist.
	p, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"progress": 99})
	require.NoError(t, err)
	assert.Equal(t, 50, p.Progress)

	// Without tasks the stored value is editable again.
	p, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"tasks": []model.ClientProjectTask{}})
	require.NoError(t, err)
	p, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"progress": 42})
	require.NoError(t, err)
	assert.Equal(t, 42, p.Progress)

	// Out-of-range manual progress is clamped.
	p, err = s.UpdateClientProject(ctx, p.ID, map[string]any{"progress": 150})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Progress)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateClientProject(ctx, map[string]any{"name": "X", "projectId": "p1"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteClientProject(ctx, p.ID))
	assert.Empty(t, s.ListClientProjects())

	// Deleting again (or any unknown id) is a silent no-op.
	assert.NoError(t, s.DeleteClientProject(ctx, p.ID))
	assert.NoError(t, s.DeleteClientProject(ctx, "client_proj_never_existed"))
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetClientProject("client_proj_nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactSubmissionsPrepend(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateContactSubmission(ctx, map[string]any{
		"firstName": "Ada", "email": "ada@example.com", "message": "hello",
	})
	require.NoError(t, err)
	second, err := s.CreateContactSubmission(ctx, map[string]any{
		"firstName": "Ben", "email": "ben@example.com", "message": "hi",
	})
	require.NoError(t, err)

	subs := s.ListContactSubmissions()
	require.Len(t, subs, 2)
	assert.Equal(t, second.ID, subs[0].ID, "newest submission first")
	assert.Equal(t, first.ID, subs[1].ID)
	assert.Equal(t, "new", subs[0].Status)
}

type failingAdapter struct {
	inner Adapter
	fail  bool
}

func (a *failingAdapter) Load(ctx context.Context) (*Dataset, error) { return a.inner.Load(ctx) }
func (a *failingAdapter) Save(ctx context.Context, d *Dataset) error {
	if a.fail {
		return errors.New("disk full")
	}
	return a.inner.Save(ctx, d)
}

func TestFailedSaveLeavesStateUntouched(t *testing.T) {
	fa := &failingAdapter{inner: NewMemoryAdapter()}
	s := NewStore(fa, zap.NewNop())
	ctx := context.Background()
	require.NoError(t, s.Open(ctx))

	before := len(s.ListClientProjects())

	fa.fail = true
	_, err := s.CreateClientProject(ctx, map[string]any{"name": "X", "projectId": "p1"})
	require.Error(t, err)
	var pe *PersistenceError
	assert.ErrorAs(t, err, &pe)

	assert.Len(t, s.ListClientProjects(), before, "rejected write must not leak into memory")

	fa.fail = false
	_, err = s.CreateClientProject(ctx, map[string]any{"name": "X", "projectId": "p1"})
	assert.NoError(t, err)
}

func TestFileAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "db.json")
	ctx := context.Background()

	s1 := NewStore(NewFileAdapter(path), zap.NewNop())
	require.NoError(t, s1.Open(ctx))

	p, err := s1.CreateClientProject(ctx, map[string]any{
		"name": "Persisted", "projectId": "p1",
		"tasks": []model.ClientProjectTask{{ID: "t1", Title: "a", Status: model.TaskDone}},
	})
	require.NoError(t, err)

	// A second store over the same file sees the committed snapshot.
	s2 := NewStore(NewFileAdapter(path), zap.NewNop())
	require.NoError(t, s2.Open(ctx))

	got, err := s2.GetClientProject(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Name)
	assert.Equal(t, 100, got.Progress)
}

func TestImportValidatesAndNormalizes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Import(ctx, &Dataset{Divisions: []model.Division{}})
	assert.True(t, IsValidation(err), "missing content collections rejected")

	err = s.Import(ctx, &Dataset{
		Divisions: []model.Division{},
		Projects:  []model.Project{},
		Team:      []model.TeamMember{},
		ClientProjects: []model.ClientProject{{
			ID: "client_proj_x", Name: "X", ProjectID: "p1", Progress: 5,
			Tasks: []model.ClientProjectTask{{ID: "t1", Title: "a", Status: model.TaskDone}},
		}},
	})
	require.NoError(t, err)

	got, err := s.GetClientProject("client_proj_x")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress, "imported records are normalized")
	assert.Equal(t, "X", got.ClientName, "clientName backfilled from name")
}

func TestResetReinstallsSeed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, s.ListDivisions())
	d, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, d.Divisions)
	assert.NotEmpty(t, s.ListDivisions())
}
