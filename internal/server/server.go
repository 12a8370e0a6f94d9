package server

import (
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wasserpuncher/loglens/internal/analyze"
	"github.com/Wasserpuncher/loglens/internal/output"
)

// defaultTopN is used when a request does not select its own top-message
// count.
const defaultTopN = 5

// Server exposes the analysis pipeline over HTTP: one-shot analysis of a
// request body, and a websocket session for streamed lines.
type Server struct {
	engine  *gin.Engine
	started time.Time
	port    string
}

// New creates a server listening on the given port.
func New(port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &Server{
		engine:  engine,
		started: time.Now(),
		port:    port,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(s.started).Truncate(time.Second).String(),
		})
	})

	// One-shot analysis: the request body is a log stream.
	s.engine.POST("/api/analyze", s.handleAnalyze)

	// Streaming analysis over WebSocket.
	s.engine.GET("/ws", s.handleWebSocket)

	// pprof profiling endpoints.
	s.engine.GET("/debug/pprof/", gin.WrapF(pprof.Index))
	s.engine.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
	s.engine.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
	s.engine.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
	s.engine.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	s.engine.GET("/debug/pprof/allocs", gin.WrapH(pprof.Handler("allocs")))
	s.engine.GET("/debug/pprof/heap", gin.WrapH(pprof.Handler("heap")))
	s.engine.GET("/debug/pprof/goroutine", gin.WrapH(pprof.Handler("goroutine")))
}

// handleAnalyze aggregates the request body and responds with the JSON
// report. The top query parameter selects how many messages to include.
func (s *Server) handleAnalyze(c *gin.Context) {
	topN, ok := topParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
		return
	}

	stats, err := analyze.Reader(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, output.NewReport(stats, topN))
}

// topParam parses the top query parameter, defaulting to defaultTopN.
func topParam(c *gin.Context) (int, bool) {
	raw := c.Query("top")
	if raw == "" {
		return defaultTopN, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
