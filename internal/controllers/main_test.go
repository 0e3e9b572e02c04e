package controllers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app-registry/internal/logger"
	"app-registry/internal/metrics"
	"app-registry/internal/models"
	"app-registry/internal/store"
)

type fakeView struct {
	name     string
	path     string
	names    []string
	selected int
	status   string
	handler  func(Action)
}

func newFakeView() *fakeView {
	return &fakeView{selected: -1}
}

func (v *fakeView) FormState() FormState {
	state := FormState{Name: v.name, Path: v.path}
	if v.selected >= 0 && v.selected < len(v.names) {
		state.Selected = v.names[v.selected]
		state.HasSelection = true
	}
	return state
}

func (v *fakeView) SetFields(name, path string) {
	v.name, v.path = name, path
}

func (v *fakeView) ClearFields() {
	v.name, v.path = "", ""
}

func (v *fakeView) SetNames(names []string) {
	v.names = append([]string(nil), names...)
	v.selected = -1
}

func (v *fakeView) SetStatus(message string) {
	v.status = message
}

func (v *fakeView) SetActionHandler(handler func(Action)) {
	v.handler = handler
}

func (v *fakeView) typeFields(name, path string) {
	v.name, v.path = name, path
}

func (v *fakeView) press(action Action) {
	v.handler(action)
}

func (v *fakeView) selectName(name string) {
	for i, n := range v.names {
		if n == name {
			v.selected = i
			v.handler(ActionSelect)
			return
		}
	}
}

// failingRepo wraps a real store and fails chosen operations
type failingRepo struct {
	*store.Store
	failInsert bool
}

func (f *failingRepo) Insert(ctx context.Context, name, path string) error {
	if f.failInsert {
		return &store.Error{Op: "insert", Err: errors.New("disk I/O error")}
	}
	return f.Store.Insert(ctx, name, path)
}

func openStore(t *testing.T, mode models.MatchMode) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "applications.db"), store.Options{MatchMode: mode})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestController(t *testing.T, repo Repository, policy models.ErrorPolicy) (*MainController, *fakeView) {
	t.Helper()
	mc := NewMainController(repo, logger.NoOpLogger{}, policy, metrics.NewRecorder())
	view := newFakeView()
	mc.SetMainView(view)
	mc.Reload(context.Background())
	return mc, view
}

func TestAddShowsNameAndClearsFields(t *testing.T) {
	mc, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)

	view.typeFields("Editor", "/usr/bin/ed")
	view.press(ActionAdd)

	assert.Equal(t, []string{"Editor"}, view.names)
	assert.Equal(t, []string{"Editor"}, mc.Names())
	assert.Empty(t, view.name)
	assert.Empty(t, view.path)
	assert.Equal(t, "1 applications", view.status)
}

func TestAddWithEmptyFieldIsNoOp(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)

	view.typeFields("Editor", "")
	view.press(ActionAdd)
	assert.Empty(t, view.names)
	assert.Equal(t, "Editor", view.name, "fields stay untouched")

	view.typeFields("", "/usr/bin/ed")
	view.press(ActionAdd)
	assert.Empty(t, view.names)
}

func TestRemoveWithoutSelectionIsNoOp(t *testing.T) {
	s := openStore(t, models.MatchAll)
	require.NoError(t, s.Insert(context.Background(), "Editor", "/usr/bin/ed"))
	_, view := newTestController(t, s, models.PolicySilent)

	view.press(ActionRemove)

	entries, err := s.Entries(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, []string{"Editor"}, view.names)
}

func TestRemoveKeepsFields(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)
	view.typeFields("Editor", "/usr/bin/ed")
	view.press(ActionAdd)

	view.selectName("Editor")
	require.Equal(t, "/usr/bin/ed", view.path)
	view.press(ActionRemove)

	assert.Empty(t, view.names)
	assert.Equal(t, "Editor", view.name)
	assert.Equal(t, "/usr/bin/ed", view.path)
}

func TestDuplicateNameScenario(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)
	assert.Empty(t, view.names)

	view.typeFields("Editor", "/usr/bin/ed")
	view.press(ActionAdd)
	assert.Equal(t, []string{"Editor"}, view.names)

	view.typeFields("Editor", "/usr/bin/vim")
	view.press(ActionAdd)
	assert.Equal(t, []string{"Editor", "Editor"}, view.names)

	view.selectName("Editor")
	view.press(ActionRemove)
	assert.Empty(t, view.names)
}

func TestDuplicateNameScenarioFirstMatch(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchFirst), models.PolicySilent)

	view.typeFields("Editor", "/usr/bin/ed")
	view.press(ActionAdd)
	view.typeFields("Editor", "/usr/bin/vim")
	view.press(ActionAdd)

	view.selectName("Editor")
	view.press(ActionRemove)
	assert.Equal(t, []string{"Editor"}, view.names)

	view.selectName("Editor")
	assert.Equal(t, "/usr/bin/vim", view.path)
}

func TestUpdateRenamesAllMatches(t *testing.T) {
	s := openStore(t, models.MatchAll)
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, "Editor", "/usr/bin/ed"))
	require.NoError(t, s.Insert(ctx, "Editor", "/usr/bin/vi"))
	_, view := newTestController(t, s, models.PolicySilent)

	view.selectName("Editor")
	view.typeFields("Vim", "/usr/bin/vim")
	view.press(ActionUpdate)

	assert.Equal(t, []string{"Vim", "Vim"}, view.names)
	assert.Empty(t, view.name)
	assert.Empty(t, view.path)

	view.selectName("Vim")
	assert.Equal(t, "Vim", view.name)
	assert.Equal(t, "/usr/bin/vim", view.path)

	_, err := s.SelectPathByName(ctx, "Editor")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateWithoutSelectionIsNoOp(t *testing.T) {
	s := openStore(t, models.MatchAll)
	require.NoError(t, s.Insert(context.Background(), "Editor", "/usr/bin/ed"))
	_, view := newTestController(t, s, models.PolicySilent)

	view.typeFields("Vim", "/usr/bin/vim")
	view.press(ActionUpdate)

	assert.Equal(t, []string{"Editor"}, view.names)
	assert.Equal(t, "Vim", view.name)
}

func TestSelectRoundTrip(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)

	view.typeFields("X", "/p")
	view.press(ActionAdd)
	view.selectName("X")

	assert.Equal(t, "X", view.name)
	assert.Equal(t, "/p", view.path)
}

func TestSelectMissingEntryLeavesFields(t *testing.T) {
	s := openStore(t, models.MatchAll)
	require.NoError(t, s.Insert(context.Background(), "Ghost", "/ghost"))
	_, view := newTestController(t, s, models.PolicySilent)

	// removed behind the form's back
	_, err := s.DeleteByName(context.Background(), "Ghost")
	require.NoError(t, err)

	view.typeFields("typed", "/typed")
	view.selectName("Ghost")
	assert.Equal(t, "typed", view.name)
	assert.Equal(t, "/typed", view.path)
}

func TestStoreErrorSilentPolicy(t *testing.T) {
	repo := &failingRepo{Store: openStore(t, models.MatchAll), failInsert: true}
	_, view := newTestController(t, repo, models.PolicySilent)

	view.typeFields("Editor", "/usr/bin/ed")
	assert.NotPanics(t, func() { view.press(ActionAdd) })

	// behaves as if the insert went through: reload and clear still run
	assert.Empty(t, view.names)
	assert.Empty(t, view.name)
	assert.Equal(t, "0 applications", view.status)
}

func TestStoreErrorStatusPolicy(t *testing.T) {
	repo := &failingRepo{Store: openStore(t, models.MatchAll), failInsert: true}
	_, view := newTestController(t, repo, models.PolicyStatus)

	view.typeFields("Editor", "/usr/bin/ed")
	view.press(ActionAdd)

	assert.Contains(t, view.status, "add failed")
	assert.Contains(t, view.status, "disk I/O error")
}

func TestUnavailableStore(t *testing.T) {
	_, view := newTestController(t, store.Unavailable{Cause: errors.New("cannot open")}, models.PolicySilent)

	assert.NotPanics(t, func() {
		view.typeFields("Editor", "/usr/bin/ed")
		view.press(ActionAdd)
		view.press(ActionRemove)
		view.press(ActionUpdate)
	})
	assert.Empty(t, view.names)
}

func TestUnknownActionIgnored(t *testing.T) {
	_, view := newTestController(t, openStore(t, models.MatchAll), models.PolicySilent)
	view.typeFields("Editor", "/usr/bin/ed")

	view.press(Action("undo"))

	assert.Empty(t, view.names)
	assert.Equal(t, "Editor", view.name)
}

func TestDispatchWithoutView(t *testing.T) {
	mc := NewMainController(openStore(t, models.MatchAll), nil, "", nil)
	assert.NotPanics(t, func() {
		mc.Dispatch(context.Background(), ActionAdd)
		mc.Reload(context.Background())
	})
	assert.Empty(t, mc.Names())
}
