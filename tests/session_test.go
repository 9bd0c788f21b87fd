package tests

import (
	"context"
	"testing"

	"dukapos/internal/i18n"
	"dukapos/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionManager() *session.Manager {
	return session.NewManager(newStubSessionStore(), i18n.LangEnglish)
}

func TestSessionStartLandsOnDashboard(t *testing.T) {
	m := newSessionManager()
	state, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)

	assert.Equal(t, session.ScreenDashboard, state.Screen)
	assert.Empty(t, state.History)
	assert.Equal(t, "en", state.Language)
	assert.Equal(t, "Asha", state.Username)
}

func TestNavigateLegalTransitions(t *testing.T) {
	m := newSessionManager()
	_, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)

	state, err := m.Navigate(context.Background(), "s1", session.ScreenSales)
	require.NoError(t, err)
	assert.Equal(t, session.ScreenSales, state.Screen)

	state, err = m.Navigate(context.Background(), "s1", session.ScreenPOS)
	require.NoError(t, err)
	assert.Equal(t, session.ScreenPOS, state.Screen)
	assert.Equal(t, []session.Screen{session.ScreenDashboard, session.ScreenSales}, state.History)
}

func TestNavigateIllegalTransitionRejected(t *testing.T) {
	m := newSessionManager()
	_, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)

	// inventory is not reachable from sales, only from the dashboard
	_, err = m.Navigate(context.Background(), "s1", session.ScreenSales)
	require.NoError(t, err)
	_, err = m.Navigate(context.Background(), "s1", session.ScreenInventory)
	assert.ErrorIs(t, err, session.ErrInvalidTransition)

	_, err = m.Navigate(context.Background(), "s1", "no-such-screen")
	assert.ErrorIs(t, err, session.ErrInvalidTransition)
}

func TestLogoutFromAnywhereClearsSession(t *testing.T) {
	m := newSessionManager()
	_, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)
	_, err = m.Navigate(context.Background(), "s1", session.ScreenFinance)
	require.NoError(t, err)

	state, err := m.Navigate(context.Background(), "s1", session.ScreenLogin)
	require.NoError(t, err)
	assert.Equal(t, session.ScreenLogin, state.Screen)

	_, err = m.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestBackPopsHistory(t *testing.T) {
	m := newSessionManager()
	_, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)
	_, err = m.Navigate(context.Background(), "s1", session.ScreenPurchase)
	require.NoError(t, err)
	_, err = m.Navigate(context.Background(), "s1", session.ScreenOrders)
	require.NoError(t, err)

	state, err := m.Back(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.ScreenPurchase, state.Screen)

	state, err = m.Back(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.ScreenDashboard, state.Screen)

	// Back at the dashboard with empty history is a no-op
	state, err = m.Back(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.ScreenDashboard, state.Screen)
}

func TestSetLanguageKeepsScreen(t *testing.T) {
	m := newSessionManager()
	_, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)
	_, err = m.Navigate(context.Background(), "s1", session.ScreenCustomers)
	require.NoError(t, err)

	state, err := m.SetLanguage(context.Background(), "s1", i18n.LangArabic)
	require.NoError(t, err)
	assert.Equal(t, "ar", state.Language)
	assert.Equal(t, session.ScreenCustomers, state.Screen)
	assert.True(t, i18n.RTL(state.Language))

	_, err = m.SetLanguage(context.Background(), "s1", "fr")
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestManagerUnsupportedDefaultFallsBackToEnglish(t *testing.T) {
	m := session.NewManager(newStubSessionStore(), "xx")
	state, err := m.Start(context.Background(), "s1", "u1", "Asha")
	require.NoError(t, err)
	assert.Equal(t, i18n.LangEnglish, state.Language)
}
