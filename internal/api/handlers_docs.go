package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists the document trees present under the output
// root, one entry per processed document.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.cfg.OutputDir)
	if err != nil {
		if os.IsNotExist(err) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"documents": []string{}})
			return
		}
		jsonError(w, "read output dir: "+err.Error(), http.StatusInternalServerError)
		return
	}

	docs := []string{}
	for _, e := range entries {
		if e.IsDir() {
			docs = append(docs, e.Name())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleDeleteDocument removes one document's output tree.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	stem := chi.URLParam(r, "docStem")
	if stem == "" || strings.ContainsAny(stem, "/\\") || strings.Contains(stem, "..") {
		jsonError(w, "invalid document name", http.StatusBadRequest)
		return
	}

	dir := filepath.Join(s.cfg.OutputDir, stem)
	if _, err := os.Stat(dir); err != nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		jsonError(w, "delete failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("deleted document output", "document", stem)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"deleted": stem})
}
