package api

import (
	"github.com/hvpham/lexiflash/internal/services"
	"github.com/hvpham/lexiflash/internal/worker"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	DeckService     services.DeckService
	LearnService    services.LearnService
	TestService     services.TestService
	SettingsService services.SettingsService
	StatsService    services.StatsService
	ImportPool      *worker.Pool
	UploadDir       string
}
