package session

import (
	"context"
	"errors"
	"time"

	"dukapos/internal/i18n"
)

// ErrInvalidTransition is returned when a requested screen change is not
// allowed by the navigation graph.
var ErrInvalidTransition = errors.New("navigation not allowed from current screen")

// Manager runs the per-session view state machine on top of a Store.
type Manager struct {
	store       Store
	defaultLang string
}

func NewManager(store Store, defaultLang string) *Manager {
	if !i18n.Supported(defaultLang) {
		defaultLang = i18n.LangEnglish
	}
	return &Manager{store: store, defaultLang: defaultLang}
}

// Start creates fresh state for a session, placed on the dashboard. Called
// at login, replacing any state a previous session with the same ID left.
func (m *Manager) Start(ctx context.Context, sessionID, userID, username string) (*State, error) {
	state := &State{
		UserID:    userID,
		Username:  username,
		Screen:    ScreenDashboard,
		History:   []Screen{},
		Language:  m.defaultLang,
		UpdatedAt: time.Now().UTC(),
	}
	if err := m.store.Set(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Get returns the current state for a session.
func (m *Manager) Get(ctx context.Context, sessionID string) (*State, error) {
	return m.store.Get(ctx, sessionID)
}

// Navigate moves the session to another screen if the transition is legal,
// pushing the previous screen onto the history stack. Navigating to the
// login screen clears the session instead (logout).
func (m *Manager) Navigate(ctx context.Context, sessionID string, to Screen) (*State, error) {
	if !Valid(to) {
		return nil, ErrInvalidTransition
	}
	state, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !CanNavigate(state.Screen, to) {
		return nil, ErrInvalidTransition
	}
	if to == ScreenLogin {
		if err := m.store.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
		return &State{Screen: ScreenLogin, Language: state.Language, UpdatedAt: time.Now().UTC()}, nil
	}
	state.History = append(state.History, state.Screen)
	state.Screen = to
	state.UpdatedAt = time.Now().UTC()
	if err := m.store.Set(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Back pops the history stack. With an empty history the session stays on
// its current screen rather than erroring; repeated back presses at the
// dashboard are a no-op.
func (m *Manager) Back(ctx context.Context, sessionID string) (*State, error) {
	state, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(state.History) == 0 {
		return state, nil
	}
	last := len(state.History) - 1
	state.Screen = state.History[last]
	state.History = state.History[:last]
	state.UpdatedAt = time.Now().UTC()
	if err := m.store.Set(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetLanguage switches the session's display language. The screen and
// history are untouched, so a language change never loses the operator's
// place in the UI.
func (m *Manager) SetLanguage(ctx context.Context, sessionID, lang string) (*State, error) {
	if !i18n.Supported(lang) {
		return nil, i18n.ErrUnsupportedLanguage
	}
	state, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Language = lang
	state.UpdatedAt = time.Now().UTC()
	if err := m.store.Set(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// End deletes the session state outright.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
