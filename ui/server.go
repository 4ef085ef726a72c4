package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"projectpulse/internal/config"
	"projectpulse/internal/session"
	"projectpulse/internal/testkit"
)

// sessionCookie carries the browser session ID.
const sessionCookie = "pmd_session"

// Server represents the dashboard web server
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	sessions      *session.Store
	cfg           *config.Config
	embeddedFiles fs.FS
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, embeddedFiles fs.FS) *Server {
	return &Server{
		router:        gin.Default(),
		sessions:      session.NewStore(cfg.Session.TTL),
		cfg:           cfg,
		embeddedFiles: embeddedFiles,
	}
}

// Initialize parses templates and wires up routes
func (s *Server) Initialize() error {
	templatesFS, err := fs.Sub(s.embeddedFiles, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	s.templates, err = template.New("").ParseFS(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	s.setupRoutes()
	s.sessions.StartJanitor(10 * time.Minute)

	log.Printf("[Initialize] Server initialized (demo data: %v)", s.cfg.Data.DemoData)
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)

	api := s.router.Group("/api")
	api.GET("/options", s.handleOptions)
	api.POST("/select", s.handleSelect)
	api.POST("/report", s.handleReport)
	api.GET("/summary", s.handleSummary)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	log.Printf("[Start] Dashboard server listening on %s", addr)
	return s.router.Run(addr)
}

// sessionID returns the request's session ID, creating a session (and
// setting the cookie) when the browser has none or the old one expired.
func (s *Server) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && s.sessions.Exists(id) {
		return id
	}

	id := s.sessions.Create()
	if s.cfg.Data.DemoData {
		s.sessions.SetTable(id, testkit.DemoTable())
	}
	c.SetCookie(sessionCookie, id, int(s.cfg.Session.TTL.Seconds()), "/", "", false, true)
	log.Printf("[sessionID] Created session %s (%d live)", id, s.sessions.Count())
	return id
}
