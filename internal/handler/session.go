package handler

import (
	"errors"
	"net/http"

	"dukapos/internal/apierror"
	"dukapos/internal/dto"
	"dukapos/internal/i18n"
	"dukapos/internal/middleware"
	"dukapos/internal/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct{ sessions *session.Manager }

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// State returns the operator's current screen and language.
func (h *SessionHandler) State(c *gin.Context) {
	claims := middleware.GetClaims(c)
	state, err := h.sessions.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("no active session"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load session"))
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(state))
}

// Navigate moves the session to another screen, enforcing the state machine.
func (h *SessionHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	state, err := h.sessions.Navigate(c.Request.Context(), claims.UserID, session.Screen(req.Screen))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidTransition):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, session.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("no active session"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("failed to navigate"))
		}
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(state))
}

// Back pops the navigation history.
func (h *SessionHandler) Back(c *gin.Context) {
	claims := middleware.GetClaims(c)
	state, err := h.sessions.Back(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("no active session"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to navigate back"))
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(state))
}

// SetLanguage switches the session language without losing the screen.
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	var req dto.SetLanguageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	state, err := h.sessions.SetLanguage(c.Request.Context(), claims.UserID, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, i18n.ErrUnsupportedLanguage):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, session.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("no active session"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("failed to set language"))
		}
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(state))
}

func toSessionResponse(state *session.State) dto.SessionStateResponse {
	return dto.SessionStateResponse{
		UserID:   state.UserID,
		Username: state.Username,
		Screen:   string(state.Screen),
		Language: state.Language,
		RTL:      i18n.RTL(state.Language),
	}
}
