package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avelikov/finboard/internal/config"
)

// Login runs the credentials sign-in flow. Classified failures come back as
// a message for the form; infrastructure failures surface as a plain 500.
// On success the session cookie is set and the client is sent to the
// dashboard.
func (h *Handler) Login(c *gin.Context) {
	form, ok := h.formValues(c)
	if !ok {
		return
	}

	token, message, err := h.actions.Authenticate(c.Request.Context(), "", form)
	if err != nil {
		slog.Error("authenticate", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	maxAge := h.cfg.SessionTTLHours * 3600
	c.SetCookie(config.SessionCookieName, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, config.DashboardRoute)
}
