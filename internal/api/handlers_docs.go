package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/docoutline/internal/outline"
)

// handleListDocuments lists every stored document with summary fields.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	recs, err := s.orchestrator.Store().List(r.Context())
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	docs := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, map[string]any{
			"doc_id":     rec.DocID,
			"filename":   rec.Filename,
			"title":      rec.Title,
			"page_count": rec.PageCount,
			"headings":   len(rec.Headings),
			"created_at": rec.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleGetDocument returns one stored outline, flat by default or
// nested with ?format=tree.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	rec, err := s.orchestrator.Store().Get(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to load document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Query().Get("format") == "tree" {
		tree := outline.BuildTree(rec.Headings)
		if tree == nil {
			tree = []*outline.Node{}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"doc_id":   rec.DocID,
			"filename": rec.Filename,
			"title":    rec.Title,
			"tree":     tree,
		})
		return
	}
	json.NewEncoder(w).Encode(rec)
}

// handleDeleteDocument removes a stored outline.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	found, err := s.orchestrator.Store().Delete(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
