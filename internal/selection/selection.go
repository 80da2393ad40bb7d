// Package selection keeps the right-hand pane's selection on the top-level
// ancestor of whatever is selected on the left.
package selection

import (
	"errors"
	"fmt"
	"log/slog"

	"treeview/internal/model"
)

var (
	// ErrNoSelection is returned when the source has nothing selected.
	ErrNoSelection = errors.New("no row selected")
	// ErrOutOfRange is returned by a Target that has no row at the path.
	ErrOutOfRange = errors.New("path out of range")
)

// Source is the pane whose selection drives the sync.
type Source interface {
	Selected() (model.Path, bool)
}

// Target is the pane that follows.
type Target interface {
	SelectPath(p model.Path) error
}

type State int

const (
	Idle State = iota
	Syncing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Syncing:
		return "syncing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Synchronizer holds the target pane; it does not own it.
type Synchronizer struct {
	target Target
	logger *slog.Logger
	state  State
}

func NewSynchronizer(target Target, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{target: target, logger: logger}
}

func (s *Synchronizer) State() State { return s.state }

// Sync applies the top-level ancestor of src's selection to the target. A
// call made while a sync is already running is ignored.
func (s *Synchronizer) Sync(src Source) error {
	if s.state == Syncing {
		s.logger.Debug("sync already running, ignoring")
		return nil
	}
	s.state = Syncing
	defer func() { s.state = Idle }()

	path, ok := src.Selected()
	if !ok || path.Depth() == 0 {
		return ErrNoSelection
	}

	top := path.TopLevel()
	s.logger.Debug("syncing selection", "selected", path.String(), "top", top.String())

	if err := s.target.SelectPath(top); err != nil {
		return fmt.Errorf("select %s: %w", top, err)
	}
	return nil
}

// Handle runs Sync and logs the outcome. Absent selections are a no-op.
// It is the form installed as a signal handler.
func (s *Synchronizer) Handle(src Source) {
	err := s.Sync(src)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoSelection):
		s.logger.Debug("selection cleared, target left unchanged")
	default:
		s.logger.Warn("selection sync failed", "err", err)
	}
}
