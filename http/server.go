// Package http serves the roster web chat interface.
package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/roster"
	"github.com/fwojciec/roster/chat"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SessionCookie is the name of the cookie carrying the session ID.
const SessionCookie = "roster_session"

// DataUnavailableBanner is shown on every page when the record table
// could not be loaded.
const DataUnavailableBanner = "Record data file not found or invalid. Answers will come from the model only."

//go:embed views/*.html
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// Server serves the web chat interface.
type Server struct {
	ln     net.Listener
	server *http.Server
	pages  map[string]*template.Template

	// Addr is the address to listen on, e.g. ":8080".
	Addr string

	Responder *chat.Responder
	Sessions  *SessionStore
	Records   roster.RecordService
	Converter roster.Converter
	Logger    *slog.Logger

	// DataUnavailable turns on the dataset banner.
	DataUnavailable bool

	// BotLabel names the bot in the transcript.
	BotLabel string
}

// NewServer returns a Server with its routes and templates set up.
// Dependencies are assigned by the caller before Open.
func NewServer() *Server {
	s := &Server{
		pages:    make(map[string]*template.Template),
		Sessions: NewSessionStore(DefaultSessionTTL),
		Logger:   slog.New(slog.DiscardHandler),
		BotLabel: "Grok",
	}
	for _, name := range []string{"home.html", "chat.html", "about.html"} {
		s.pages[name] = template.Must(template.ParseFS(viewsFS, "views/layout.html", "views/"+name))
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the router for all routes.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/about", s.handleAbout)
	r.Get("/chat", s.handleChat)
	r.Post("/chat", s.handleChatSubmit)
	r.Post("/chat/tone", s.handleChatTone)
	r.Post("/chat/clear", s.handleChatClear)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	return r
}

// Open starts listening on Addr. Use Serve to accept connections.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// URL returns the base URL of the listening server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Serve accepts connections until Close is called.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type pageData struct {
	Title  string
	Active string
	Banner string

	Tone     roster.Tone
	Tones    []roster.Tone
	Turns    []turnView
	BotLabel string
}

type turnView struct {
	Speaker string
	User    bool
	Text    string
	HTML    template.HTML
}

func (s *Server) newPageData(title, active string) pageData {
	data := pageData{Title: title, Active: active, BotLabel: s.BotLabel}
	if s.DataUnavailable {
		data.Banner = DataUnavailableBanner
	}
	return data
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", s.newPageData("Home", "home"))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, "about.html", s.newPageData("About", "about"))
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData("Chat with "+s.BotLabel, "chat")
	data.Tone = roster.DefaultTone
	data.Tones = roster.Tones()

	// Reading the page never starts a session; the first POST does.
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	s.Sessions.View(id, func(sess *roster.Session) {
		data.Tone = sess.Tone
		data.Turns = s.turnViews(sess.Turns)
	})
	s.render(w, "chat.html", data)
}

func (s *Server) handleChatSubmit(w http.ResponseWriter, r *http.Request) {
	message := r.PostFormValue("message")
	s.withSession(w, r, func(sess *roster.Session) {
		reply, ok := s.Responder.Submit(r.Context(), sess, message)
		if !ok {
			return
		}
		s.logReply(reply)
	})
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

func (s *Server) handleChatTone(w http.ResponseWriter, r *http.Request) {
	tone, err := roster.ParseTone(r.PostFormValue("tone"))
	if err != nil {
		http.Error(w, roster.ErrorMessage(err), http.StatusBadRequest)
		return
	}
	s.withSession(w, r, func(sess *roster.Session) {
		sess.SetTone(tone)
	})
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

func (s *Server) handleChatClear(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *roster.Session) {
		sess.Clear()
	})
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	n, err := s.Records.CountRecords(r.Context())
	if err != nil {
		http.Error(w, roster.ErrorMessage(err), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}{"ok", n})
}

// withSession runs fn against the caller's session and refreshes the
// session cookie when a new session was started.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(*roster.Session)) {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}
	got := s.Sessions.Do(id, fn)
	if got != id {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    got,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (s *Server) turnViews(turns []roster.Turn) []turnView {
	views := make([]turnView, 0, len(turns))
	for _, t := range turns {
		if t.Role == roster.RoleUser {
			views = append(views, turnView{Speaker: "You", User: true, Text: t.Content})
			continue
		}
		v := turnView{Speaker: s.BotLabel, Text: t.Content}
		if s.Converter != nil {
			html, err := s.Converter.Convert(t.Content)
			if err == nil {
				v.HTML = template.HTML(html)
			} else {
				s.Logger.Warn("render reply", "error", err)
			}
		}
		views = append(views, v)
	}
	return views
}

func (s *Server) logReply(reply chat.Reply) {
	switch reply.Source {
	case chat.SourceRecord:
		s.Logger.Debug("answered from records", "name", reply.Record.DisplayName(), "score", reply.Score)
	case chat.SourceModel:
		s.Logger.Debug("answered by model")
	case chat.SourceError:
		s.Logger.Warn("model fallback failed", "error", reply.Err)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.pages[name].ExecuteTemplate(w, "layout", data); err != nil {
		s.Logger.Error("render page", "page", name, "error", err)
	}
}
