package http

import (
	"github.com/gin-gonic/gin"
)

// Server owns the configured gin engine serving the task API.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks until the listener fails or the process exits.
func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
