package selection

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treeview/internal/model"
)

type fixedSource struct {
	path model.Path
	ok   bool
}

func (f fixedSource) Selected() (model.Path, bool) { return f.path, f.ok }

type recordingTarget struct {
	rows     int
	selected model.Path
	calls    int
}

func (r *recordingTarget) SelectPath(p model.Path) error {
	r.calls++
	if p.Depth() != 1 || p[0] >= r.rows {
		return ErrOutOfRange
	}
	r.selected = p.Clone()
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSyncSelectsTopLevelAncestor(t *testing.T) {
	target := &recordingTarget{rows: 10}
	s := NewSynchronizer(target, quietLogger())

	require.NoError(t, s.Sync(fixedSource{path: model.NewPath(6, 3), ok: true}))
	assert.Equal(t, "6", target.selected.String())
	assert.Equal(t, Idle, s.State())
}

func TestSyncTopLevelSelection(t *testing.T) {
	target := &recordingTarget{rows: 10}
	s := NewSynchronizer(target, quietLogger())

	require.NoError(t, s.Sync(fixedSource{path: model.NewPath(2), ok: true}))
	assert.Equal(t, "2", target.selected.String())
}

func TestSyncDeepSelection(t *testing.T) {
	target := &recordingTarget{rows: 10}
	s := NewSynchronizer(target, quietLogger())

	require.NoError(t, s.Sync(fixedSource{path: model.NewPath(9, 8, 7, 6), ok: true}))
	assert.Equal(t, "9", target.selected.String())
}

func TestSyncWithoutSelectionLeavesTargetUnchanged(t *testing.T) {
	target := &recordingTarget{rows: 10, selected: model.NewPath(4)}
	s := NewSynchronizer(target, quietLogger())

	err := s.Sync(fixedSource{})
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, "4", target.selected.String())
	assert.Zero(t, target.calls)
	assert.Equal(t, Idle, s.State())

	s.Handle(fixedSource{})
	assert.Equal(t, "4", target.selected.String())
}

func TestSyncOutOfRange(t *testing.T) {
	target := &recordingTarget{rows: 3, selected: model.NewPath(1)}
	s := NewSynchronizer(target, quietLogger())

	err := s.Sync(fixedSource{path: model.NewPath(6, 3), ok: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, "1", target.selected.String())
	assert.Equal(t, Idle, s.State())
}

type reentrantTarget struct {
	s     *Synchronizer
	inner error
	seen  State
}

func (r *reentrantTarget) SelectPath(model.Path) error {
	r.seen = r.s.State()
	r.inner = r.s.Sync(fixedSource{path: model.NewPath(1), ok: true})
	return nil
}

func TestSyncIgnoresReentrantCall(t *testing.T) {
	target := &reentrantTarget{}
	s := NewSynchronizer(target, quietLogger())
	target.s = s

	require.NoError(t, s.Sync(fixedSource{path: model.NewPath(0, 0), ok: true}))
	assert.Equal(t, Syncing, target.seen)
	assert.NoError(t, target.inner)
	assert.Equal(t, Idle, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "syncing", Syncing.String())
	assert.Equal(t, "State(7)", State(7).String())
}
