package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
	usecases "pdfshrink/internal/usecase"
)

// Server HTTP поверхность сервиса: страница загрузки,
// эндпоинт сжатия и health check
type Server struct {
	config  *entities.Config
	useCase *usecases.CompressDocumentUseCase
	logger  repositories.Logger
	engine  *gin.Engine
}

// NewServer создает HTTP сервер с настроенными маршрутами
func NewServer(
	config *entities.Config,
	useCase *usecases.CompressDocumentUseCase,
	logger repositories.Logger,
) *Server {
	s := &Server{
		config:  config,
		useCase: useCase,
		logger:  logger,
		engine:  gin.Default(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes настраивает маршруты
func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/health", s.handleHealth)

	apiGroup := s.engine.Group("/api/pdf")
	{
		apiGroup.POST("/compress", s.handleCompress)
	}
}

// Handler возвращает корневой обработчик (используется в тестах)
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run запускает сервер и блокируется до сигнала завершения
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Server.ListenAddr,
		Handler:      s.engine,
		ReadTimeout:  time.Duration(s.config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.config.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(s.config.Server.IdleTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logInfo("HTTP сервер запущен на %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Ожидаем сигнал для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	s.logInfo("Остановка сервера...")

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.config.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	s.logInfo("Сервер остановлен")
	return nil
}

func (s *Server) logInfo(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Info(format, args...)
	}
}
