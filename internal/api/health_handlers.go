package api

import "net/http"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status": "ok",
	}
	if s.ImportPool != nil {
		payload["import_queue"] = s.ImportPool.QueueSize()
	}
	writeJSON(w, r, http.StatusOK, payload)
}
