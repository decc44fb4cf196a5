package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"turnos/queue-service/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	engine *gin.Engine
	logger *log.Logger
}

func New(appEnv config.AppEnv, logger *log.Logger) *Server {
	switch appEnv {
	case config.ProductionEnv:
		gin.SetMode(gin.ReleaseMode)
	case config.TestEnv:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery())

	return &Server{
		engine: r,
		logger: logger,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Serve(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info(fmt.Sprintf("turnos API listening at: %s", address))
	srvError := make(chan error, 1)
	go func() {
		srvError <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		// graceful shutdown
		s.logger.Info("rest server is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-srvError:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
