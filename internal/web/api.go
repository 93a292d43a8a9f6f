package web

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/recommend"
	"github.com/llehouerou/chorus/internal/session"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status    string    `json:"status"` // "success" or "error"
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SongJSON is a song as exposed by the API. Score is null when the dataset
// left it empty.
type SongJSON struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artist     string   `json:"artist"`
	Category   string   `json:"category,omitempty"`
	ScoreLabel string   `json:"score_label"`
	Score      *float64 `json:"score"`
	EmbedURL   string   `json:"embed_url"`
}

// StateJSON is the current selection and recommendation of a session.
type StateJSON struct {
	DatasetType string    `json:"dataset_type"`
	Variant     string    `json:"variant"`
	Category    string    `json:"category"`
	Categories  []string  `json:"categories"`
	Status      string    `json:"status"`
	Total       int       `json:"total"`
	Top         *SongJSON `json:"top,omitempty"`
	Song        *SongJSON `json:"song,omitempty"`
	Drawn       bool      `json:"drawn"`
	Shown       int       `json:"shown"`
	Message     string    `json:"message,omitempty"`
}

// DatasetsJSON lists the selectable datasets.
type DatasetsJSON struct {
	Types        []DatasetTypeJSON `json:"types"`
	TrendingFile string            `json:"trending_file"`
}

// DatasetTypeJSON groups the variants of one curation flag.
type DatasetTypeJSON struct {
	Type     string        `json:"type"`
	Variants []VariantJSON `json:"variants"`
}

// VariantJSON is one selectable main dataset.
type VariantJSON struct {
	Description string `json:"description"`
	File        string `json:"file"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

type datasetRequest struct {
	DatasetType string `json:"dataset_type"`
	Variant     string `json:"variant"`
}

func respondJSON(w http.ResponseWriter, status int, resp *APIResponse) {
	resp.Timestamp = time.Now().UTC()
	data, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, &APIResponse{Status: "success", Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &APIResponse{Status: "error", Error: &APIError{Code: code, Message: message}})
}

// respondSessionError maps selection failures to client errors and anything
// else (a dataset that cannot be read) to a server error.
func (s *Server) respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrUnknownDatasetType):
		respondError(w, http.StatusBadRequest, "unknown_dataset_type", err.Error())
	case errors.Is(err, session.ErrUnknownVariant):
		respondError(w, http.StatusBadRequest, "unknown_variant", err.Error())
	case errors.Is(err, session.ErrUnknownCategory):
		respondError(w, http.StatusBadRequest, "unknown_category", err.Error())
	default:
		s.log.Error().Err(err).Msg("session update")
		respondError(w, http.StatusInternalServerError, "dataset_error", "dataset unavailable")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) handleAPIState(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r.Context())
	e.mu.Lock()
	defer e.mu.Unlock()

	respondData(w, s.stateJSON(e.sess))
}

func (s *Server) handleAPICategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	e := sessionFrom(r.Context())
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.sess.SetCategory(req.Category); err != nil {
		s.respondSessionError(w, err)
		return
	}
	respondData(w, s.stateJSON(e.sess))
}

func (s *Server) handleAPIAnother(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r.Context())
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.Another()
	respondData(w, s.stateJSON(e.sess))
}

// handleAPIDataset applies the dataset type first, then the variant; either
// may be omitted.
func (s *Server) handleAPIDataset(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	e := sessionFrom(r.Context())
	e.mu.Lock()
	defer e.mu.Unlock()

	if req.DatasetType != "" {
		if err := e.sess.SetDatasetType(catalog.DatasetType(req.DatasetType)); err != nil {
			s.respondSessionError(w, err)
			return
		}
	}
	if req.Variant != "" {
		if err := e.sess.SetVariant(req.Variant); err != nil {
			s.respondSessionError(w, err)
			return
		}
	}
	respondData(w, s.stateJSON(e.sess))
}

func (s *Server) handleAPIDatasets(w http.ResponseWriter, _ *http.Request) {
	out := DatasetsJSON{TrendingFile: s.opts.TrendingFile}
	for _, t := range s.opts.Registry.Types() {
		group := DatasetTypeJSON{Type: string(t)}
		for _, v := range s.opts.Registry.Variants(t) {
			group.Variants = append(group.Variants, VariantJSON{Description: v.Description, File: v.File})
		}
		out.Types = append(out.Types, group)
	}
	respondData(w, out)
}

func (s *Server) stateJSON(sess *session.Session) StateJSON {
	d := sess.Display()
	return StateJSON{
		DatasetType: string(sess.DatasetType()),
		Variant:     sess.Variant().Description,
		Category:    sess.Category(),
		Categories:  sess.Categories(),
		Status:      d.Status.String(),
		Total:       d.Total,
		Top:         s.songJSON(d.Top),
		Song:        s.songJSON(d.Song),
		Drawn:       d.Drawn() && d.Status == recommend.StatusShowing,
		Shown:       len(sess.State().Shown),
		Message:     d.Message,
	}
}

func (s *Server) songJSON(song *catalog.Song) *SongJSON {
	if song == nil {
		return nil
	}
	out := &SongJSON{
		ID:         song.ID,
		Name:       song.Name,
		Artist:     song.Artist,
		Category:   song.Category,
		ScoreLabel: song.Score.Label(),
		EmbedURL:   s.opts.Player.URL(song.ID),
	}
	if !math.IsNaN(song.Score.Value) {
		v := song.Score.Value
		out.Score = &v
	}
	return out
}
