package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"homebase/internal/adapters/observability"
	"homebase/internal/app"
	"homebase/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService

	// BookLimit throttles the write path; nil disables throttling.
	BookLimit *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/experiences", h.listExperiences)
	s.mux.Get("/v1/experiences/recommended", h.recommended)
	s.mux.Get("/v1/experiences/popular", h.popular)
	s.mux.Get("/v1/experiences/{id}", h.getExperience)
	s.mux.With(RateLimit(h.BookLimit)).Post("/v1/experiences/{id}/bookings", h.bookExperience)
	s.mux.Get("/v1/tags", h.listTags)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with a weak ETag, honoring If-None-Match.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// parseFilterOptions binds the list query params. Absent params impose no
// constraint. `weekend` is bound but currently has no predicate behind it.
func parseFilterOptions(r *http.Request) (domain.FilterOptions, error) {
	q := r.URL.Query()
	opts := domain.FilterOptions{
		Category: domain.CategoryAll,
		Date:     q.Get("date"),
		Time:     q.Get("time"),
	}
	if c := q.Get("category"); c != "" {
		cat := domain.Category(c)
		if cat != domain.CategoryAll && !cat.Valid() {
			return opts, errors.New("category must be all, event or service")
		}
		opts.Category = cat
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return opts, errors.New("min_price must be a non-negative number")
		}
		opts.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return opts, errors.New("max_price must be a non-negative number")
		}
		opts.MaxPrice = &f
	}
	if v := q.Get("available_now"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("available_now must be a boolean")
		}
		opts.AvailableNow = b
	}
	if v := q.Get("tags"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				opts.Tags = append(opts.Tags, t)
			}
		}
	}
	if v := q.Get("weekend"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("weekend must be a boolean")
		}
		opts.Weekend = &b
	}
	return opts, nil
}

func (h *Handlers) listExperiences(w http.ResponseWriter, r *http.Request) {
	opts, err := parseFilterOptions(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	out, err := h.Q.Filter(r.Context(), opts)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "filter failed")
		return
	}
	if out == nil {
		out = []domain.Experience{}
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getExperience(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exp, err := h.Q.GetExperience(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "experience not found")
		return
	}
	writeJSON(w, r, exp)
}

func (h *Handlers) recommended(w http.ResponseWriter, r *http.Request) {
	promoList(w, r, h.Q.Recommended)
}

func (h *Handlers) popular(w http.ResponseWriter, r *http.Request) {
	promoList(w, r, h.Q.Popular)
}

func promoList(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]domain.Experience, error)) {
	out, err := load(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "list failed")
		return
	}
	if out == nil {
		out = []domain.Experience{}
	}
	writeJSON(w, r, out)
}

func (h *Handlers) listTags(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Tags(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "tags failed")
		return
	}
	if out == nil {
		out = []domain.TagInfo{}
	}
	writeJSON(w, r, out)
}

type bookRequest struct {
	UserID string `json:"user_id"`
}

type bookResponse struct {
	ExperienceID   string `json:"experience_id"`
	UserID         string `json:"user_id,omitempty"`
	AvailableSpots int    `json:"available_spots"`
}

func (h *Handlers) bookExperience(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with a user_id field")
		return
	}

	// The store reports plain failure; check existence up front so the
	// response can tell an unknown id from a sold-out entry.
	if _, err := h.Q.GetExperience(r.Context(), id); err != nil {
		observability.ObserveBooking("not_found")
		writeProblem(w, http.StatusNotFound, "Not Found", "experience not found")
		return
	}

	ok, err := h.B.Book(r.Context(), id, req.UserID)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "booking failed")
		return
	}
	if !ok {
		observability.ObserveBooking("rejected")
		writeProblem(w, http.StatusConflict, "Fully booked", "no spots left")
		return
	}
	observability.ObserveBooking("confirmed")

	// Book evicted the detail key, so this read reflects the decrement.
	exp, err := h.Q.GetExperience(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "booking confirmed but lookup failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := bookResponse{ExperienceID: id, UserID: req.UserID, AvailableSpots: exp.AvailableSpots}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to write booking response")
	}
}
