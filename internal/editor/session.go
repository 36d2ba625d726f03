package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/inventory/internal/logging"
	"github.com/dmitrijs2005/inventory/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSessionClosed = errors.New("session closed")
	ErrSessionBusy   = errors.New("session already started")
	ErrNotReady      = errors.New("session not ready")
)

// Phase is the lifecycle position of a Session.
type Phase int

const (
	Uninitialized Phase = iota
	Loading
	Ready
	Saved
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Saved:
		return "saved"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves p.
func (p Phase) Terminal() bool { return p == Saved || p == Cancelled }

// Session is one entry or edit flow:
//
//	Uninitialized -> [Loading ->] Ready -> Ready ... -> Saved | Cancelled
//
// It is safe for concurrent use; calls are serialized.
type Session struct {
	mu    sync.Mutex
	id    uuid.UUID
	ed    *Editor
	log   logging.Logger
	phase Phase
	state State
}

// NewSession returns an uninitialized session.
func (e *Editor) NewSession() *Session {
	id := uuid.New()
	return &Session{
		id:  id,
		ed:  e,
		log: e.log.With("session", id.String()),
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// State returns the latest state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setPhase(ctx context.Context, p Phase) {
	s.log.Debug(ctx, "session transition", "from", s.phase.String(), "to", p.String())
	s.phase = p
}

// checkStart returns the error for starting a session in its current phase.
func (s *Session) checkStart() error {
	switch {
	case s.phase.Terminal():
		return ErrSessionClosed
	case s.phase != Uninitialized:
		return ErrSessionBusy
	}
	return nil
}

// Start begins a new entry from prefill (nil for an empty draft).
func (s *Session) Start(ctx context.Context, prefill *models.ItemDetails) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStart(); err != nil {
		return State{}, err
	}
	s.state = NewEntry(prefill)
	s.setPhase(ctx, Ready)
	return s.state, nil
}

// Load begins an edit of item id. On failure the session returns to
// Uninitialized and the error is passed through.
func (s *Session) Load(ctx context.Context, id int64) (State, error) {
	s.mu.Lock()
	if err := s.checkStart(); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	s.setPhase(ctx, Loading)
	s.mu.Unlock()

	st, err := s.ed.LoadForEdit(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != Loading {
		// cancelled while the load was in flight
		return State{}, ErrSessionClosed
	}
	if err != nil {
		s.setPhase(ctx, Uninitialized)
		return State{}, err
	}
	s.state = st
	s.setPhase(ctx, Ready)
	return st, nil
}

// Update replaces the draft and returns the recomputed state.
func (s *Session) Update(d models.ItemDetails) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.phase.Terminal():
		return State{}, ErrSessionClosed
	case s.phase != Ready:
		return State{}, ErrNotReady
	}
	s.state = UpdateDraft(s.state, d)
	return s.state, nil
}

// Save persists the draft and closes the session. A rejected draft or a
// repository failure leaves the session Ready so the user can correct it.
func (s *Session) Save(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.phase.Terminal():
		return 0, ErrSessionClosed
	case s.phase != Ready:
		return 0, ErrNotReady
	}

	id, err := s.ed.Save(ctx, s.state)
	if err != nil {
		if errors.Is(err, ErrValidationRejected) {
			s.log.Debug(ctx, "save rejected")
		}
		return 0, err
	}
	s.state.Details.ID = id
	s.setPhase(ctx, Saved)
	return id, nil
}

// Cancel discards the session without saving.
func (s *Session) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase.Terminal() {
		return ErrSessionClosed
	}
	s.setPhase(ctx, Cancelled)
	return nil
}
