package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats := s.orchestrator.Stats()
	if stats == nil {
		jsonError(w, "run stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"runs":        stats.Snapshot(),
	})
}
