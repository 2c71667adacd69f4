// Package web serves the repository search page. The page, its form
// endpoints and its live update stream all drive one search.Session.
package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/frobware/repofinder/search"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders a session over HTTP.
type Server struct {
	session *search.Session
	log     *zap.Logger
	pages   *template.Template
}

type pageData struct {
	TypedText string
	View      search.View
}

// NewServer parses the embedded templates.
func NewServer(session *search.Session, log *zap.Logger) (*Server, error) {
	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &Server{
		session: session,
		log:     log,
		pages:   pages,
	}, nil
}

// Router returns the HTTP handler. Only "/" is a page; the other
// routes exist to feed it.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Post("/input", s.input)
	r.Post("/search", s.search)
	r.Get("/results", s.results)
	r.Get("/events", s.events)

	r.With(render.SetContentType(render.ContentTypeJSON)).Get("/api/repositories", s.repositories)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return r
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		TypedText: s.session.Controller.TypedText(),
		View:      s.session.Display.Snapshot(),
	}
	s.execute(w, "page", data)
}

func (s *Server) results(w http.ResponseWriter, r *http.Request) {
	s.execute(w, "results", s.session.Display.Snapshot())
}

func (s *Server) execute(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// input records typed text. It never fetches.
func (s *Server) input(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	s.session.Controller.SetTypedText(r.PostForm.Get("username"))
	w.WriteHeader(http.StatusNoContent)
}

// search commits the typed text, taking the submitted username as the
// typed text first when the form carries one.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if values, ok := r.PostForm["username"]; ok && len(values) > 0 {
		s.session.Controller.SetTypedText(values[0])
	}
	s.session.Controller.Commit()

	if r.Header.Get("X-Requested-With") != "" {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) repositories(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.session.Display.Snapshot())
}

// events streams the results fragment, once on connect and again on
// every display replacement.
func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates, cancel := s.session.Display.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if err := s.writeEvent(w, s.session.Display.Snapshot()); err != nil {
		s.log.Debug("event stream closed", zap.Error(err))
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case view, ok := <-updates:
			if !ok {
				return
			}
			if err := s.writeEvent(w, view); err != nil {
				s.log.Debug("event stream closed", zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func (s *Server) writeEvent(w http.ResponseWriter, view search.View) error {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, "results", view); err != nil {
		return errors.Wrap(err, "failed to render results")
	}

	data, err := json.Marshal(buf.String())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: results\nid: %d\ndata: %s\n\n", view.Version, data)
	return err
}
