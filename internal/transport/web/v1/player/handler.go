package player

import (
	"log"
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	pl "github.com/NAMITJAIN06/bite-learning/internal/player"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

type Handler struct {
	Log *log.Logger
}

type classifyResponse struct {
	domain.APIEnvelope
	Player pl.Descriptor `json:"player"`
}

// Classify godoc
// @Summary     Classify video URL
// @Description Подбирает плеер для произвольного URL. Неподдерживаемый формат — это kind=unsupported, а не ошибка.
// @Tags        player
// @Produce     json
// @Param       url query string true "video URL"
// @Success     200 {object} classifyResponse
// @Router      /api/player [get]
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	const op = "player.classify"
	reqID := mw.RequestIDFromCtx(r.Context())

	raw := r.URL.Query().Get("url")
	if domain.Blank(raw) {
		v1.WriteDomainError(w, r, domain.Validation(domain.MsgURLRequired))
		return
	}

	d := pl.Classify(raw)
	logx.Info(h.Log, reqID, op, "classified", "kind", string(d.Kind), "provider", string(d.Provider))
	v1.WriteOK(w, r, classifyResponse{APIEnvelope: domain.Ok(), Player: d})
}
