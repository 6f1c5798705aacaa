package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todo-service/internal/middleware"
	"todo-service/internal/task/repository"
	"todo-service/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware
	middleware  middleware.Config
	metrics     bool
	metricsPath string

	// Task domain
	taskRepo repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Middleware     middleware.Config
	MetricsEnabled bool
	MetricsPath    string

	// Task domain
	TaskRepository repository.Repository
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		metrics:         cfg.MetricsEnabled,
		metricsPath:     cfg.MetricsPath,
		taskRepo:        cfg.TaskRepository,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.metricsPath == "" {
		srv.metricsPath = "/metrics"
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskRepo == nil {
		return errors.New("task repository is required")
	}
	return nil
}
