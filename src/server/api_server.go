package server

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"trade-journal/src/analysis"
	"trade-journal/src/interfaces"
	"trade-journal/src/logger"
	"trade-journal/src/models"
	"trade-journal/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// APIServer
// -----------------------------------------------------------------------------

// APIServer carries the REST control surface and the WebSocket hub. The hub
// doubles as a push transport: the server implements IPushSender, so the
// journal can fan pushed entries out to connected dashboards.
type APIServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine

	Journal  interfaces.IJournal
	History  *utils.HistoryManager
	Analyzer *analysis.AnalysisFacade
	Clock    interfaces.IClock

	// WebSocket clients
	clients    map[*Client]struct{}
	broadcast  chan *models.MPushEvent // Buffered queue feeding the hub loop
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Closed on Stop; unblocks pump goroutines

	stateMutex sync.RWMutex
	stopped    bool
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewAPIServer(
	cfg *models.MConfig,
	log *logger.Logger,
	j interfaces.IJournal,
	history *utils.HistoryManager,
	analyzer *analysis.AnalysisFacade,
	clock interfaces.IClock,
) *APIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		Config:   cfg,
		Logger:   log,
		engine:   gin.Default(),
		Journal:  j,
		History:  history,
		Analyzer: analyzer,
		Clock:    clock,
		clients:  make(map[*Client]struct{}),
		// Push bursts must not block AddMessage
		broadcast:  make(chan *models.MPushEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}

	// Add CORS Middleware
	s.engine.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if strings.HasPrefix(origin, "http://127.0.0.1:") {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *APIServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/metrics", s.getMetrics)
	s.engine.GET("/api/stats", s.getStats)
	s.engine.GET("/api/policy", s.getPolicy)
	s.engine.PUT("/api/policy", s.putPolicy)
	s.engine.GET("/api/messages", s.getMessages)
	s.engine.POST("/api/persist", s.postPersist)
	s.engine.POST("/api/prune", s.postPrune)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *APIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	go s.handleWebsockets()

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

func (s *APIServer) Stop() error {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	if s.stopped {
		return nil
	}
	s.stopped = true
	close(s.broadcast)
	close(s.done)
	return nil
}

// -----------------------------------------------------------------------------
// Route Handlers
// -----------------------------------------------------------------------------

func (s *APIServer) getHealth(c *gin.Context) {
	s.stateMutex.RLock()
	connections := len(s.clients)
	s.stateMutex.RUnlock()

	metrics := s.Journal.Metrics()

	c.JSON(200, gin.H{
		"status":       "ok",
		"connections":  connections,
		"buffered":     s.Journal.Total(),
		"last_message": metrics.LastMessageUnix,
		"last_persist": metrics.LastPersistUnix,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getMetrics(c *gin.Context) {
	c.JSON(200, s.Journal.Metrics())
}

// -----------------------------------------------------------------------------

func (s *APIServer) getStats(c *gin.Context) {
	history := s.History.All()
	c.JSON(200, s.Analyzer.Analyze(history, s.Clock.ServerNow()))
}

// -----------------------------------------------------------------------------

func (s *APIServer) getPolicy(c *gin.Context) {
	c.JSON(200, s.Journal.Policy())
}

// -----------------------------------------------------------------------------

func (s *APIServer) putPolicy(c *gin.Context) {
	var view models.MPolicyView
	if err := c.ShouldBindJSON(&view); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid policy body: %v", err)})
		return
	}

	terminalPriority, ok := models.KindFromName(view.TerminalPriority)
	if !ok {
		c.JSON(400, gin.H{"error": fmt.Sprintf("unknown terminal priority: %s", view.TerminalPriority)})
		return
	}
	pushPriority, ok := models.KindFromName(view.PushPriority)
	if !ok {
		c.JSON(400, gin.H{"error": fmt.Sprintf("unknown push priority: %s", view.PushPriority)})
		return
	}

	s.Journal.SetTerminal(view.TerminalEnabled, terminalPriority)
	s.Journal.SetPush(view.PushEnabled, pushPriority)

	c.JSON(200, s.Journal.Policy())
}

// -----------------------------------------------------------------------------

func (s *APIServer) getMessages(c *gin.Context) {
	source := c.Query("source")

	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid limit: %s", raw)})
			return
		}
		limit = parsed
	}

	messages := s.History.Latest(source, limit)
	c.JSON(200, gin.H{
		"count":    len(messages),
		"messages": messages,
		"sources":  s.History.Sources(),
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) postPersist(c *gin.Context) {
	ok := s.Journal.PersistToFile()
	status := 200
	if !ok {
		status = 500
	}
	c.JSON(status, gin.H{"persisted": ok, "buffered": s.Journal.Total()})
}

// -----------------------------------------------------------------------------

func (s *APIServer) postPrune(c *gin.Context) {
	days := s.Config.Journal.RetentionDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(400, gin.H{"error": fmt.Sprintf("invalid days: %s", raw)})
			return
		}
		days = parsed
	}

	deleted := s.Journal.PruneOldLogs(days)
	c.JSON(200, gin.H{"deleted": deleted, "retention_days": days})
}
