// Package server exposes the kiosk catalog over HTTP: a password gate, the
// categories and items API, on-demand text content, static content bytes
// and the persisted text-size preference. The catalog is rebuilt from disk
// on every categories/items request; there is no cross-request cache.
package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mhorak/kiosek/pkg/catalog"
	"github.com/mhorak/kiosek/pkg/models"
	"github.com/mhorak/kiosek/pkg/prefs"
	"github.com/mhorak/kiosek/pkg/query"
)

// Config holds everything the server needs.
type Config struct {
	Password   string
	SessionTTL time.Duration
}

// Server routes kiosk requests. The content filesystem is injected so the
// whole surface is testable against an in-memory fake.
type Server struct {
	cfg      Config
	content  fs.FS
	prefs    *prefs.Store
	sessions *sessionStore
	log      *logrus.Logger
}

// New creates a server over the content filesystem. prefStore may be nil,
// in which case the preference endpoints report defaults and discard
// writes.
func New(cfg Config, content fs.FS, prefStore *prefs.Store, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * 24 * time.Hour
	}
	return &Server{
		cfg:      cfg,
		content:  content,
		prefs:    prefStore,
		sessions: newSessionStore(cfg.SessionTTL),
		log:      log,
	}
}

// Handler returns the full route table.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", srv.handleLogin)
	mux.HandleFunc("GET /logout", srv.handleLogout)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	api := http.NewServeMux()
	api.HandleFunc("GET /api/categories", srv.handleCategories)
	api.HandleFunc("GET /api/items", srv.handleItems)
	api.HandleFunc("GET /api/text", srv.handleText)
	api.HandleFunc("GET /api/prefs/textsize", srv.handleGetTextSize)
	api.HandleFunc("PUT /api/prefs/textsize", srv.handlePutTextSize)
	api.Handle("GET /content/", http.StripPrefix("/content/", http.FileServerFS(srv.content)))

	mux.Handle("/", srv.requireAuth(api))
	return mux
}

func (srv *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password != srv.cfg.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Nesprávné heslo",
		})
		return
	}

	token, err := srv.sessions.create()
	if err != nil {
		srv.log.WithError(err).Error("creating session")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(srv.cfg.SessionTTL / time.Second),
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (srv *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		srv.sessions.destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleCategories returns the child categories of the parent path (top
// level when parent is omitted) together with the catalog's mode flag.
func (srv *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cat := catalog.Load(r.Context(), srv.content, srv.log)

	var categories []*models.CategoryNode
	parent := strings.Trim(r.URL.Query().Get("parent"), "/")
	if cat.IsLegacy {
		if parent == "" {
			categories = query.LegacyCategories(cat)
		}
	} else if parent == "" {
		categories = cat.Categories
	} else {
		categories = query.ChildrenOf(cat, strings.Split(parent, "/"))
	}
	if categories == nil {
		categories = []*models.CategoryNode{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"isLegacy":   cat.IsLegacy,
	})
}

// handleItems returns items filtered by category and/or search. The filters
// are independent; in practice the client sends one or the other.
func (srv *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	cat := catalog.Load(r.Context(), srv.content, srv.log)

	category := strings.Trim(r.URL.Query().Get("category"), "/")
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	items := cat.Items
	if category != "" {
		items = query.ItemsUnder(cat, category, false)
	}
	if search != "" {
		q := strings.ToLower(search)
		filtered := make([]*models.Item, 0, len(items))
		for _, item := range items {
			if query.Matches(item, q) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if items == nil {
		items = []*models.Item{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// handleText serves the raw content of a text-type item for the client's
// on-demand fetch when a text viewer opens.
func (srv *Server) handleText(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Query().Get("path"), "/")
	if p == "" || !fs.ValidPath(p) || models.InferType(p) != models.TypeText {
		http.NotFound(w, r)
		return
	}

	data, err := fs.ReadFile(srv.content, p)
	if err != nil {
		srv.log.WithError(err).WithField("path", p).Warn("text content not readable")
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(data)
}

func (srv *Server) handleGetTextSize(w http.ResponseWriter, r *http.Request) {
	size := prefs.TextSizeMedium
	if srv.prefs != nil {
		size = srv.prefs.TextSize()
	}
	writeJSON(w, http.StatusOK, map[string]any{"textSize": size})
}

func (srv *Server) handlePutTextSize(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TextSize string `json:"textSize"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !prefs.ValidTextSize(body.TextSize) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Neplatná velikost textu"})
		return
	}
	if srv.prefs != nil {
		if err := srv.prefs.SetTextSize(body.TextSize); err != nil {
			srv.log.WithError(err).Error("persisting text size")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Chyba při ukládání nastavení"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"textSize": body.TextSize})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
