package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"price-tracker/src/helpers"
	"price-tracker/src/importer"
	"price-tracker/src/interfaces"
	"price-tracker/src/logger"
	"price-tracker/src/models"
	"price-tracker/src/query"
	"price-tracker/src/tracker"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// WebServer
// -----------------------------------------------------------------------------

type WebServer struct {
	Config   *models.MConfig
	Logger   *logger.Logger
	DB       interfaces.IDatabase
	Query    *query.Engine
	Importer *importer.Runner
	Tracker  *tracker.StatusTracker
	engine   *gin.Engine

	// WebSocket clients
	clients    map[*Client]struct{}
	clientsMu  sync.Mutex
	register   chan *Client
	unregister chan *Client
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewWebServer(cfg *models.MConfig, db interfaces.IDatabase, q *query.Engine, imp *importer.Runner, t *tracker.StatusTracker, log *logger.Logger) *WebServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &WebServer{
		Config:     cfg,
		Logger:     log,
		DB:         db,
		Query:      q,
		Importer:   imp,
		Tracker:    t,
		engine:     gin.Default(),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") || strings.HasPrefix(origin, "http://localhost:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *WebServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/prices", s.getPrices)
	s.engine.GET("/api/securities", s.getSecurities)
	s.engine.POST("/api/import", s.postImport)
	s.engine.GET("/api/import/status", s.getImportStatus)
	s.engine.GET("/api/import/stream", s.streamImportStatus)
	s.engine.GET("/api/admin/db", s.getAdminDB)
	s.engine.GET("/api/health", s.getHealth)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *WebServer) getPrices(c *gin.Context) {
	filter, notices := query.ParseFilter(c.Request.URL.Query(), time.Now().UTC())

	result, err := s.Query.Run(filter, notices)
	if err != nil {
		s.Logger.Error("Price query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "price query failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------

func (s *WebServer) getSecurities(c *gin.Context) {
	secs, err := s.DB.ListSecurities()
	if err != nil {
		s.Logger.Error("Security listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "security listing failed"})
		return
	}
	if secs == nil {
		secs = []models.MSecurity{}
	}
	c.JSON(http.StatusOK, secs)
}

// -----------------------------------------------------------------------------

func (s *WebServer) postImport(c *gin.Context) {
	securityID, err := strconv.ParseInt(c.PostForm("security_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "security_id must be an integer"})
		return
	}
	timePeriod := c.PostForm("time_period")

	err = s.Importer.Start(securityID, timePeriod)
	if err == nil {
		c.JSON(http.StatusAccepted, gin.H{"message": "Import started"})
		return
	}

	var vErr *helpers.ValidationError
	switch {
	case errors.Is(err, tracker.ErrImportRunning):
		c.JSON(http.StatusConflict, gin.H{"message": "An import is already in progress"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
	default:
		s.Logger.Error("Import start failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "import start failed"})
	}
}

// -----------------------------------------------------------------------------

func (s *WebServer) getImportStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.Tracker.Snapshot())
}

// -----------------------------------------------------------------------------

func (s *WebServer) getAdminDB(c *gin.Context) {
	if err := s.DB.Ping(); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":        "Error",
			"tables":        []string{},
			"error_message": fmt.Sprintf("Failed to connect to database: %v", err),
		})
		return
	}

	tables, err := s.DB.TableNames()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":        "Error",
			"tables":        []string{},
			"error_message": fmt.Sprintf("Failed to list tables: %v", err),
		})
		return
	}
	if tables == nil {
		tables = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        fmt.Sprintf("Connected to %s", s.Config.Storage.DBType),
		"tables":        tables,
		"error_message": nil,
	})
}

// -----------------------------------------------------------------------------

func (s *WebServer) getHealth(c *gin.Context) {
	s.clientsMu.Lock()
	connections := len(s.clients)
	s.clientsMu.Unlock()

	securityCount := 0
	if secs, err := s.DB.ListSecurities(); err == nil {
		securityCount = len(secs)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"connections": connections,
		"securities":  securityCount,
		"importing":   s.Tracker.Snapshot().Running,
	})
}
