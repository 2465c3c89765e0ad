package http

import (
	"net/http"
	"strings"

	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/service"
	"mountainride-backoffice/internal/wizard"
)

type AuthHandler struct {
	authSvc  service.AuthService
	sessions SessionState
	wizard   *wizard.Wizard
	notifier *Notifier
	view     *Renderer
}

func NewAuthHandler(authSvc service.AuthService, sessions SessionState, w *wizard.Wizard, notifier *Notifier, view *Renderer) *AuthHandler {
	return &AuthHandler{
		authSvc:  authSvc,
		sessions: sessions,
		wizard:   w,
		notifier: notifier,
		view:     view,
	}
}

type loginView struct {
	Email string
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Ready() && ownsSession(h.sessions, r) {
		redirect(w, r, "/")
		return
	}
	h.view.Render(w, r, http.StatusOK, "login", "Sign in", "", loginView{})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))

	if _, err := h.authSvc.Login(r.Context(), email, r.PostForm.Get("password")); err != nil {
		h.notifier.Fail(err)
		h.view.Render(w, r, http.StatusOK, "login", "Sign in", "", loginView{Email: email})
		return
	}

	setSessionCookie(w, r, h.sessions.SessionKey())
	redirect(w, r, "/")
}

// Logout ends the session and abandons any rental in progress
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.wizard.Close()
	if err := h.authSvc.Logout(r.Context()); err != nil {
		logger.Error("Logout failed", "error", err)
		h.notifier.Fail(err)
	}
	clearSessionCookie(w, r)
	redirect(w, r, "/login")
}

// ToggleSidebar flips the collapsed sidebar cookie and goes back to the page
func ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	value := "collapsed"
	if sidebarCollapsed(r) {
		value = "expanded"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sidebarCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	redirect(w, r, localPath(r.PostForm.Get("return")))
}
