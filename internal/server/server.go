// Package server serves the portfolio over HTTP with gin.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/palette"
	"github.com/Zachkp/folio/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port string
	// Mode is the gin mode: debug, release or test.
	Mode string
	// AccessLog enables the hashed-IP access log.
	AccessLog bool
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg        Config
	site       *site.Site
	router     *gin.Engine
	httpServer *http.Server
	visits     *visitLog
}

// New creates a server for s.
func New(cfg Config, s *site.Site) *Server {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	srv := &Server{cfg: cfg, site: s, visits: newVisitLog()}
	srv.router = srv.buildRouter()
	srv.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return srv
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if s.cfg.AccessLog {
		r.Use(s.visits.middleware())
	}
	r.SetHTMLTemplate(s.site.Templates())

	r.StaticFS("/static", http.FS(site.Static()))

	r.GET("/", s.handleIndex)
	r.GET("/projects/:id", s.handleProject)
	r.GET("/palette", s.handlePalette)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Router returns the HTTP handler.
func (s *Server) Router() *gin.Engine { return s.router }

// Start begins listening on the configured port. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	log.Printf("[server] listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, site.IndexTemplate, s.site.Page())
}

func (s *Server) handleProject(c *gin.Context) {
	pv, err := s.site.Project(c.Param("id"))
	if err != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(`<p class="subtle">Project not found.</p>`))
		return
	}
	c.HTML(http.StatusOK, site.ProjectTemplate, pv)
}

func (s *Server) handlePalette(c *gin.Context) {
	c.JSON(http.StatusOK, palette.Items(s.site.Profile()))
}

// handleContact is the script-less fallback of the contact form: it hands
// the submission to the visitor's mail client.
func (s *Server) handleContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte(`<p class="subtle">Could not read the form.</p>`))
		return
	}
	c.Redirect(http.StatusSeeOther, contact.MailtoURL(s.site.Profile().Links.Email, s.site.Greeting(), form))
}
