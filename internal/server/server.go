// Package server exposes the keep-alive health endpoint used by external
// uptime probes. It runs independently of the update loop.
package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Server struct {
	echo *echo.Echo
	addr string
}

func New(port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return &Server{echo: e, addr: fmt.Sprintf(":%d", port)}
}

// Start serves until the listener fails. It blocks.
func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}
