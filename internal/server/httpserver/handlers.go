package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/signupd/internal/server/services"
)

const (
	errorPage   = "<h1>An error occurred!</h1>"
	maxFormSize = 1 << 20
)

type pageData struct {
	Title   string
	Message string
}

func (s *HTTPServer) page(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	body, err := s.pages.render(name, data)
	if err != nil {
		s.logger.Error(r.Context(), "template render failed", "page", name, "error", err, "req_id", RequestID(r.Context()))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(errorPage))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *HTTPServer) index(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "index", pageData{Title: "main page"})
}

func (s *HTTPServer) signupForm(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusOK, "signup", pageData{Title: "sign up"})
}

// signup creates the account and renders the outcome on the signup page.
// Every outcome, failures included, is answered with 200.
func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	err := s.users.AddUser(r.Context(),
		r.PostForm.Get("username"),
		r.PostForm.Get("password"),
		r.PostForm.Get("email"),
	)
	result := services.ResultOf(err)
	if result != services.Created {
		s.logger.Debug(r.Context(), "signup rejected", "result", result.String(), "req_id", RequestID(r.Context()))
	}

	s.page(w, r, http.StatusOK, "signup", pageData{Title: "sign up", Message: Message(result)})
}

func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, http.StatusNotFound, "404", pageData{Title: "not found"})
}

func (s *HTTPServer) healthz(w http.ResponseWriter, r *http.Request) {
	ok := true
	if err := s.db.PingContext(r.Context()); err != nil {
		s.logger.Warn(r.Context(), "health check failed", "error", err)
		ok = false
	}

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": ok})
}
