// Package server exposes the catalog and dependency engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AreyMadhav/PakSeek/internal/asset"
	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
	"github.com/AreyMadhav/PakSeek/internal/depgraph"
	"github.com/AreyMadhav/PakSeek/internal/preview"
	"github.com/AreyMadhav/PakSeek/internal/scanner"
)

const shutdownTimeout = 10 * time.Second

// Server serves one scan result. The catalog and dependency map are
// shared across requests and guarded by a single mutex; every handler
// takes it exclusively for the duration of the request.
type Server struct {
	mu     sync.Mutex
	scan   *scanner.Result
	assets []asset.Asset
	graph  *depgraph.Map
}

// New wraps a scan result for serving.
func New(result *scanner.Result) *Server {
	return &Server{
		scan:   result,
		assets: result.Assets,
		graph:  result.Graph,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", s.handleHealth)
	router.GET("/info", s.handleInfo)
	router.GET("/assets", s.handleAssets)
	router.GET("/preview/:name", s.handlePreview)
	router.GET("/dependencies", s.handleDependencies)
	router.GET("/analysis/:name", s.handleAnalysis)
	router.GET("/statistics", s.handleStatistics)
	router.GET("/validate", s.handleValidate)
	router.GET("/export", s.handleExport)

	return router
}

// Run serves the API on the given port until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	logger := ctxlog.FromContext(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down HTTP API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-errChan
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleInfo(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"name":       "PakSeek",
		"scan_root":  s.scan.Root,
		"archives":   len(s.scan.Archives),
		"containers": len(s.scan.Containers),
		"assets":     len(s.assets),
		"mock_data":  s.scan.Mock,
		"scanned_in": s.scan.Duration.String(),
	})
}

func (s *Server) handleAssets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := asset.Filter(s.assets, c.Query("type"), c.Query("search"))
	c.JSON(http.StatusOK, gin.H{
		"assets": filtered,
		"total":  len(filtered),
	})
}

func (s *Server) handlePreview(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := c.Param("name")
	a, ok := s.lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found: " + name})
		return
	}
	c.JSON(http.StatusOK, preview.Generate(c.Request.Context(), a))
}

func (s *Server) handleDependencies(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := c.Query("asset")
	if name == "" {
		c.JSON(http.StatusOK, s.graph)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"asset":            name,
		"dependencies":     s.graph.Dependencies(name),
		"dependents":       s.graph.Dependents(name),
		"all_dependencies": s.graph.AllDependencies(name),
	})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := c.Param("name")
	if !s.known(name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found: " + name})
		return
	}
	c.JSON(http.StatusOK, s.graph.Analyze(name, asset.Names(s.assets)))
}

func (s *Server) handleStatistics(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, s.graph.Statistics(asset.Names(s.assets)))
}

func (s *Server) handleValidate(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	issues := s.graph.Validate()
	c.JSON(http.StatusOK, gin.H{
		"issues": issues,
		"clean":  len(issues) == 0,
	})
}

func (s *Server) handleExport(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	format := strings.ToLower(c.DefaultQuery("format", "json"))
	out, err := s.graph.Export(format)
	if err != nil {
		if errors.Is(err, depgraph.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	switch format {
	case "json":
		c.Data(http.StatusOK, "application/json", []byte(out))
	default:
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(out))
	}
}

// lookup finds a catalog asset by name. Callers must hold mu.
func (s *Server) lookup(name string) (asset.Asset, bool) {
	for _, a := range s.assets {
		if a.Name == name {
			return a, true
		}
	}
	return asset.Asset{}, false
}

// known reports whether a name exists in the catalog or as a dependency
// map source. Callers must hold mu.
func (s *Server) known(name string) bool {
	if _, ok := s.lookup(name); ok {
		return true
	}
	_, ok := s.graph.Deps[name]
	return ok
}
