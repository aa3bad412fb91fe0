package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/latest-stack/pkg/catalog"
	"github.com/matzehuels/latest-stack/pkg/errors"
	"github.com/matzehuels/latest-stack/pkg/resolve"
)

// RequestIDHeader carries the per-request id.
const RequestIDHeader = "X-Request-ID"

// Handler returns the HTTP router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(s.requestLogging)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/versions", s.getVersions)
		r.Get("/stacks", s.listStacks)
		r.Get("/stacks/{id}", s.getStack)
		r.Post("/refresh", s.postRefresh)
	})

	return r
}

// VersionsResponse is the body of GET /api/v1/versions.
type VersionsResponse struct {
	Versions  resolve.VersionMap `json:"versions"`
	Known     int                `json:"known"`
	Total     int                `json:"total"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// StackView is a stack with its resolved version. Version is empty when
// unknown.
type StackView struct {
	catalog.Stack
	Version string `json:"version"`
}

// APIError is the body of every error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) getVersions(w http.ResponseWriter, r *http.Request) {
	v, at := s.Snapshot()
	respondJSON(w, http.StatusOK, s.versionsResponse(v, at))
}

func (s *Server) listStacks(w http.ResponseWriter, r *http.Request) {
	v, _ := s.Snapshot()

	cat := s.catalog
	if c := r.URL.Query().Get("category"); c != "" {
		category := catalog.Category(c)
		if !category.Known() {
			respondError(w, http.StatusBadRequest, errors.New(errors.ErrCodeUnknownCategory, "unknown category %q", c))
			return
		}
		cat = cat.Filter(func(st catalog.Stack) bool { return st.Category == category })
	}

	views := make([]StackView, 0, len(cat.Stacks))
	for _, st := range cat.Stacks {
		views = append(views, StackView{Stack: st, Version: v[st.ID]})
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) getStack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, err := s.catalog.Lookup(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	v, _ := s.Snapshot()
	respondJSON(w, http.StatusOK, StackView{Stack: st, Version: v[st.ID]})
}

func (s *Server) postRefresh(w http.ResponseWriter, r *http.Request) {
	v := s.Refresh(r.Context())
	_, at := s.Snapshot()
	respondJSON(w, http.StatusOK, s.versionsResponse(v, at))
}

func (s *Server) versionsResponse(v resolve.VersionMap, at time.Time) VersionsResponse {
	return VersionsResponse{
		Versions:  v,
		Known:     len(v.Known()),
		Total:     len(s.catalog.Stacks),
		UpdatedAt: at,
	}
}

// requestLogging tags each request with an id and logs it on completion.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond))
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	respondJSON(w, status, &APIError{Code: code, Message: errors.UserMessage(err)})
}
