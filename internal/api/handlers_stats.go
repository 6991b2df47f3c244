package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/sheetsplit/internal/suggest"
)

// handleLLMStats reports suggestion-call latency aggregates.
func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	snap := suggest.StatsSnapshot{}
	if s.sugg != nil {
		snap = s.sugg.StatsSnapshot()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"llm":         snap,
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
