package web

import (
	"log"
	"net/http"

	_ "github.com/NAMITJAIN06/bite-learning/internal/docs"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/creator"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/health"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/player"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1/video"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	health   *health.Handler
	videos   *video.Handler
	creators *creator.Handler
	player   *player.Handler
}

func newRouter(h handlers, corsOrigins []string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /api/health", h.health.Liveness)
	mux.HandleFunc("GET /api/readyz", h.health.Readiness)

	// videos
	mux.HandleFunc("GET /api/videos", h.videos.List)
	mux.HandleFunc("POST /api/videos/upload", limitBody(maxBodyBytes, h.videos.Upload))
	mux.HandleFunc("GET /api/videos/{id}", h.videos.Get)
	mux.HandleFunc("POST /api/videos/{id}/like", h.videos.Like)
	mux.HandleFunc("GET /api/videos/{id}/comments", h.videos.Comments)
	mux.HandleFunc("POST /api/videos/{id}/comment", limitBody(maxBodyBytes, h.videos.PostComment))
	mux.HandleFunc("GET /api/videos/{id}/player", h.videos.Player)

	// creators
	mux.HandleFunc("GET /api/creators/{id}", h.creators.Profile)

	// player
	mux.HandleFunc("GET /api/player", h.player.Classify)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// middleware: снаружи внутрь
	return mw.WithRequestID(mw.Logging(logger)(mw.Recover(logger)(mw.CORS(corsOrigins)(mux))))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
