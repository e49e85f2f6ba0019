package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"seoforge/internal/app"
	"seoforge/internal/seo"
	"seoforge/internal/storage"
)

const maxBodyBytes = 1 << 20

type Router struct {
	svc *app.Service
}

func NewRouter(svc *app.Service, allowedOrigins []string) http.Handler {
	r := &Router{svc: svc}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/outline", r.wrap(r.handleOutline))
		rt.Post("/draft", r.wrap(r.handleDraft))
		rt.Post("/image", r.wrap(r.handleImage))
		rt.Get("/artifacts", r.wrap(r.handleArtifacts))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

type errorBody struct {
	Error string `json:"error"`
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}

		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Request failed", "path", req.URL.Path, "error", err)
		}
		writeJSON(w, status, errorBody{Error: err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, seo.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, seo.ErrImageGenerationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, seo.ErrRemoteCall),
		errors.Is(err, seo.ErrMalformedResponse),
		errors.Is(err, seo.ErrSchemaViolation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, req *http.Request, v any) error {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", seo.ErrInvalidInput, err)
	}
	return nil
}

// POST /v1/outline
// Body: {"keywords": "...", "targetRegion": "...", "competitorUrls": [...], "save": false}
func (r *Router) handleOutline(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		seo.OutlineRequest
		Save bool `json:"save"`
	}
	if err := decodeBody(w, req, &body); err != nil {
		return err
	}

	res, err := r.svc.Outline(req.Context(), body.OutlineRequest, body.Save)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

// POST /v1/draft
// Body: {"outline": {...} | "outlineName": "outlines/...", "draftText": "...", "keywords": "..."}
func (r *Router) handleDraft(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Outline     *seo.ArticleOutline `json:"outline"`
		OutlineName string              `json:"outlineName"`
		DraftText   string              `json:"draftText"`
		Keywords    string              `json:"keywords"`
	}
	if err := decodeBody(w, req, &body); err != nil {
		return err
	}

	var (
		analysis *seo.DraftAnalysis
		err      error
	)
	switch {
	case body.OutlineName != "":
		analysis, err = r.svc.Draft(req.Context(), body.OutlineName, body.DraftText, body.Keywords)
	case body.Outline != nil:
		if verr := body.Outline.Validate(); verr != nil {
			return fmt.Errorf("%w: outline: %w", seo.ErrInvalidInput, verr)
		}
		analysis, err = r.svc.Analyzer().AnalyzeDraft(req.Context(), seo.DraftAnalysisRequest{
			Outline:   *body.Outline,
			DraftText: body.DraftText,
			Keywords:  body.Keywords,
		})
	default:
		return fmt.Errorf("%w: outline or outlineName is required", seo.ErrInvalidInput)
	}
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, analysis)
}

// POST /v1/image
// Body: {"prompt": "...", "save": false}
func (r *Router) handleImage(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Prompt string `json:"prompt"`
		Save   bool   `json:"save"`
	}
	if err := decodeBody(w, req, &body); err != nil {
		return err
	}

	res, err := r.svc.Image(req.Context(), body.Prompt, body.Save)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, res)
}

// GET /v1/artifacts?prefix=outlines/
func (r *Router) handleArtifacts(w http.ResponseWriter, req *http.Request) error {
	names, err := r.svc.Artifacts(req.Context(), req.URL.Query().Get("prefix"))
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return writeJSON(w, http.StatusOK, map[string]any{"artifacts": names})
}
