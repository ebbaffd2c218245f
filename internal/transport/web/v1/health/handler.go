package health

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

const MsgHealthy = "Backend is healthy"

type Pinger interface {
	Ping(context.Context) error
}

type Handler struct {
	Log    *log.Logger
	Store  Pinger
	Mirror Pinger // nil, если зеркало не настроено
}

type statusResponse struct {
	domain.APIEnvelope
	Status string `json:"status"`
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Проверка, жив ли сервис (не трогает хранилище)
// @Tags         health
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/health [get]
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	v1.WriteOK(w, r, statusResponse{APIEnvelope: domain.OkMessage(MsgHealthy), Status: "success"})
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Проверка готовности: каталог с данными и бакет зеркала (если задан)
// @Tags         health
// @Produce      json
// @Success      200  {object}  statusResponse
// @Failure      503  {object}  statusResponse
// @Router       /api/readyz [get]
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	const op = "health.readiness"
	reqID := mw.RequestIDFromCtx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	notReady := statusResponse{APIEnvelope: domain.Fail("Service not ready"), Status: "error"}

	if err := h.Store.Ping(ctx); err != nil {
		logx.Error(h.Log, reqID, op, "store ping failed", err)
		v1.WriteJSON(w, r, http.StatusServiceUnavailable, notReady)
		return
	}

	if h.Mirror != nil {
		if err := h.Mirror.Ping(ctx); err != nil {
			logx.Error(h.Log, reqID, op, "mirror ping failed", err)
			v1.WriteJSON(w, r, http.StatusServiceUnavailable, notReady)
			return
		}
	}

	logx.Info(h.Log, reqID, op, "ready")
	v1.WriteOK(w, r, statusResponse{APIEnvelope: domain.Ok(), Status: "ready"})
}
