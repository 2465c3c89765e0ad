package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mountainride-backoffice/internal/config"
)

// SessionGate applies the route security levels. Public routes always pass.
// Other routes wait for the session restore, then require the session cookie
// of the signed-in browser, and a form token on state-changing requests.
type SessionGate struct {
	sessions SessionState
	view     *Renderer
}

func NewSessionGate(sessions SessionState, view *Renderer) *SessionGate {
	return &SessionGate{sessions: sessions, view: view}
}

func (g *SessionGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := config.SecuritySession
		if route := mux.CurrentRoute(r); route != nil {
			level = config.GetSecurityLevel(route.GetName())
		}

		// Public route - no session needed
		if level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		if !g.sessions.Ready() {
			w.Header().Set("Refresh", "1")
			g.view.Render(w, r, http.StatusServiceUnavailable, "loading", "Loading", "", nil)
			return
		}

		if !ownsSession(g.sessions, r) {
			redirect(w, r, "/login")
			return
		}

		if !safeMethod(r.Method) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Bad Request", http.StatusBadRequest)
				return
			}
			if !g.sessions.ValidCSRF(r.PostForm.Get(csrfField)) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
