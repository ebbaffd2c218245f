package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/NAMITJAIN06/bite-learning/internal/config"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/creator"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/health"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/player"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/video"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, svc Services, probes Probes) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	videosLog := log.New(logger.Writer(), logger.Prefix()+"[videos] ", logger.Flags())
	creatorsLog := log.New(logger.Writer(), logger.Prefix()+"[creators] ", logger.Flags())
	playerLog := log.New(logger.Writer(), logger.Prefix()+"[player] ", logger.Flags())

	h := handlers{
		health:   &health.Handler{Log: healthLog, Store: probes.Store, Mirror: probes.Mirror},
		videos:   &video.Handler{Log: videosLog, Videos: svc.Videos},
		creators: &creator.Handler{Log: creatorsLog, Creators: svc.Creators},
		player:   &player.Handler{Log: playerLog},
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(h, cfg.CORSOriginsList(), logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Handler() http.Handler { return ws.server.Handler }

// Run блокируется до остановки сервера. http.ErrServerClosed ошибкой не считается.
func (ws *Server) Run() error {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
