package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/pedigraph/pedigraph/pkg/errors"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// parseResponse is returned by POST /api/parse.
type parseResponse struct {
	ID    string          `json:"id"`
	Graph *pedigree.Graph `json:"graph"`
	Stats statsResponse   `json:"stats"`
	Cache cacheResponse   `json:"cache"`
}

type statsResponse struct {
	Nodes       int `json:"nodes"`
	Links       int `json:"links"`
	DroppedRefs int `json:"dropped_refs"`
	Generations int `json:"generations"`
}

type cacheResponse struct {
	ParseHit  bool `json:"parse_hit"`
	LayoutHit bool `json:"layout_hit"`
}

// position is one node's coordinates in the layout view.
type position struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Generation int     `json:"generation"`
}

// handleParse accepts GEDCOM text (raw body or multipart "file" field),
// runs the pipeline, and stores the laid-out graph under a new id.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	source, ok := s.readSource(w, r)
	if !ok {
		return
	}

	if err := pkgerrors.ValidateSource(source); err != nil {
		jsonError(w, err, http.StatusBadRequest)
		return
	}

	opts := s.defaults
	opts.Source = source
	opts.Refresh = r.URL.Query().Get("refresh") == "true"
	opts.Logger = s.log
	if !s.parseSpacing(w, r, &opts) {
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		jsonError(w, pkgerrors.Wrap(pkgerrors.ErrCodeInternal, err, "pipeline failed"), http.StatusInternalServerError)
		return
	}

	id := s.store.Put(result.Graph)
	s.log.Info("stored graph", "id", id, "nodes", result.Stats.NodeCount)

	writeJSON(w, http.StatusCreated, parseResponse{
		ID:    id,
		Graph: result.Graph,
		Stats: statsResponse{
			Nodes:       result.Stats.NodeCount,
			Links:       result.Stats.LinkCount,
			DroppedRefs: result.Stats.DroppedRefs,
			Generations: len(result.Graph.Generations()),
		},
		Cache: cacheResponse{
			ParseHit:  result.CacheInfo.ParseHit,
			LayoutHit: result.CacheInfo.LayoutHit,
		},
	})
}

// handleGetGraph returns a stored graph.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGraph(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":    chi.URLParam(r, "graphID"),
		"graph": g,
	})
}

// handleGetLayout returns only the coordinate view of a stored graph.
func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGraph(w, r)
	if !ok {
		return
	}

	positions := make([]position, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		positions = append(positions, position{
			ID:         n.ID,
			Name:       n.Name,
			X:          n.X,
			Y:          n.Y,
			Generation: n.Generation,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":        chi.URLParam(r, "graphID"),
		"positions": positions,
		"links":     g.Links,
	})
}

// handleDeleteGraph removes a stored graph. Deleting an unknown id is
// answered 404 so clients can tell a stale id from a successful delete.
func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "graphID")
	if err := pkgerrors.ValidateGraphID(id); err != nil {
		jsonError(w, err, http.StatusBadRequest)
		return
	}
	if _, ok := s.store.Get(id); !ok {
		jsonError(w, pkgerrors.New(pkgerrors.ErrCodeGraphNotFound, "no graph with id %s", id), http.StatusNotFound)
		return
	}
	s.store.Delete(id)
	w.WriteHeader(http.StatusNoContent)
}

// readSource extracts GEDCOM text from the request body. It handles raw
// text bodies and multipart uploads with a "file" field. On failure it
// writes the error response and returns ok=false.
func (s *Server) readSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, pkgerrors.MaxSourceBytes+1024*1024)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "invalid multipart form: %v", err), http.StatusBadRequest)
			return "", false
		}
		defer r.MultipartForm.RemoveAll()

		file, _, err := r.FormFile("file")
		if err != nil {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "file field is required"), http.StatusBadRequest)
			return "", false
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, pkgerrors.MaxSourceBytes+1))
		if err != nil {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodeInternal, "failed to read file"), http.StatusInternalServerError)
			return "", false
		}
		if len(data) > pkgerrors.MaxSourceBytes {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodePayloadTooLarge, "file exceeds max size (%d bytes)", pkgerrors.MaxSourceBytes), http.StatusRequestEntityTooLarge)
			return "", false
		}
		return string(data), true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, pkgerrors.New(pkgerrors.ErrCodePayloadTooLarge, "failed to read body"), http.StatusRequestEntityTooLarge)
		return "", false
	}
	return string(data), true
}

// parseSpacing reads optional spacing overrides from query parameters.
// On failure it writes the error response and returns false.
func (s *Server) parseSpacing(w http.ResponseWriter, r *http.Request, opts *pipeline.Options) bool {
	if v := r.URL.Query().Get("h_spacing"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidSpacing, "invalid h_spacing: %q", v), http.StatusBadRequest)
			return false
		}
		opts.HSpacing = f
	}
	if v := r.URL.Query().Get("v_spacing"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			jsonError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidSpacing, "invalid v_spacing: %q", v), http.StatusBadRequest)
			return false
		}
		opts.VSpacing = f
	}
	return true
}

// lookupGraph resolves the {graphID} path parameter to a stored graph.
// On failure it writes the error response and returns ok=false.
func (s *Server) lookupGraph(w http.ResponseWriter, r *http.Request) (*pedigree.Graph, bool) {
	id := chi.URLParam(r, "graphID")
	if err := pkgerrors.ValidateGraphID(id); err != nil {
		jsonError(w, err, http.StatusBadRequest)
		return nil, false
	}

	g, ok := s.store.Get(id)
	if !ok {
		jsonError(w, pkgerrors.New(pkgerrors.ErrCodeGraphNotFound, "no graph with id %s", id), http.StatusNotFound)
		return nil, false
	}
	return g, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": pkgerrors.UserMessage(err),
		"code":  string(pkgerrors.GetCode(err)),
	})
}
