package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const sidebarCookie = "sidebar"

// SessionState is the read side of the operator session used by the shell
type SessionState interface {
	Ready() bool
	Profile() *domain.Profile
	ExpiresAt() *time.Time
	SessionKey() string
	CSRFToken() string
	Owns(key string) bool
	ValidCSRF(token string) bool
}

// shellView feeds the layout: sidebar, profile and notifications
type shellView struct {
	Profile   *domain.Profile
	ExpiresAt *time.Time
	Collapsed bool
	Path      string
	Section   string
}

type pageView struct {
	Title         string
	Shell         shellView
	Notifications []Notification
	Data          any
}

// Renderer executes the page templates inside the shared layout
type Renderer struct {
	pages    map[string]*template.Template
	sessions SessionState
	notifier *Notifier
}

var templateFuncs = template.FuncMap{
	"price":   utils.FormatPrice,
	"date":    utils.FormatDate,
	"optdate": utils.FormatOptionalDate,
	"idstr": func(id int64) string {
		return strconv.FormatInt(id, 10)
	},
	"expiry": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Local().Format("02 Jan 2006 15:04")
	},
}

func NewRenderer(sessions SessionState, notifier *Notifier) (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	funcs := template.FuncMap{"csrf": sessions.CSRFToken}
	for name, fn := range templateFuncs {
		funcs[name] = fn
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages, sessions: sessions, notifier: notifier}, nil
}

// Render writes page inside the layout. Pending notifications are consumed.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page, title, section string, data any) {
	tmpl, ok := v.pages[page]
	if !ok {
		logger.Error("Unknown page template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view := pageView{
		Title: title,
		Shell: shellView{
			Collapsed: sidebarCollapsed(r),
			Path:      r.URL.Path,
			Section:   section,
		},
		Data: data,
	}
	if ownsSession(v.sessions, r) {
		view.Shell.Profile = v.sessions.Profile()
		view.Shell.ExpiresAt = v.sessions.ExpiresAt()
	}
	view.Notifications = v.notifier.Drain()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		logger.Error("Failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func sidebarCollapsed(r *http.Request) bool {
	c, err := r.Cookie(sidebarCookie)
	return err == nil && c.Value == "collapsed"
}

// redirect sends the browser to target after a POST
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localPath keeps redirects on this site, falling back to "/"
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}
