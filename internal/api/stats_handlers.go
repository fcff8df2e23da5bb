package api

import "net/http"

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	overview, err := s.StatsService.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}
