package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orensade/Intub/internal/analyzer"
	"github.com/orensade/Intub/internal/assessments"
	"github.com/orensade/Intub/internal/history"
	"github.com/orensade/Intub/internal/shared/config"
	"github.com/orensade/Intub/internal/shared/metrics"
	"github.com/orensade/Intub/internal/shared/server/middleware"
	"github.com/orensade/Intub/internal/shared/server/respond"
	"github.com/orensade/Intub/internal/shared/storage/kv"
	filestore "github.com/orensade/Intub/internal/shared/storage/kv/file"
	pgstore "github.com/orensade/Intub/internal/shared/storage/kv/postgres"
	sqlitestore "github.com/orensade/Intub/internal/shared/storage/kv/sqlite"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	backend := openBackend(cfg)
	store := history.NewStore(backend)
	store.Load(context.Background())

	primary := primaryAnalyzer(cfg)
	svc := &assessments.Service{
		Analyzer: primary,
		Demo:     analyzer.NewMock(),
		History:  store,
	}
	analyzeHandler := assessments.NewHandler(svc, cfg.MaxUploadBytes)
	historyHandler := history.NewHandler(store)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		mode := "mock"
		if cfg.AnalyzerURL != "" {
			mode = "remote"
		}
		respond.JSON(c, http.StatusOK, gin.H{"status": "healthy", "analyzer": mode})
	})
	analyzeHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		r.GET("/metrics", metrics.Handler())
	}

	return r
}

// openBackend selects the history record backend from configuration. A
// backend that fails to open degrades to in-memory so the API stays up.
func openBackend(cfg config.Config) kv.Store {
	switch cfg.HistoryBackend {
	case "memory":
		return kv.NewMemory()
	case "file":
		return filestore.New(cfg.HistoryDir)
	case "postgres":
		s, err := pgstore.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
			return kv.NewMemory()
		}
		return s
	default:
		s, err := sqlitestore.Open(cfg.HistoryDir)
		if err != nil {
			log.Printf("failed to open sqlite store, falling back to memory: %v", err)
			return kv.NewMemory()
		}
		return s
	}
}

func primaryAnalyzer(cfg config.Config) analyzer.Analyzer {
	if cfg.AnalyzerURL == "" {
		return analyzer.NewMock()
	}
	client, err := analyzer.NewHTTPClient(cfg.AnalyzerURL, time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second)
	if err != nil {
		log.Printf("invalid analyzer url, falling back to mock: %v", err)
		return analyzer.NewMock()
	}
	return client
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5001"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
