package video

import (
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

// Get godoc
// @Summary     Get video
// @Tags        videos
// @Produce     json
// @Param       id path string true "video id"
// @Success     200 {object} videoResponse
// @Router      /api/videos/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "videos.get"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	v, err := h.Videos.Get(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOK(w, r, videoResponse{APIEnvelope: domain.Ok(), Video: v})
}

// Player godoc
// @Summary     Player descriptor for a stored video
// @Description Классифицирует video_url сохранённого видео: iframe, video или unsupported.
// @Tags        videos
// @Produce     json
// @Param       id path string true "video id"
// @Success     200 {object} playerResponse
// @Router      /api/videos/{id}/player [get]
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	const op = "videos.player"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	d, err := h.Videos.Player(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "player failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	logx.Info(h.Log, reqID, op, "ok", "id", id, "kind", string(d.Kind), "provider", string(d.Provider))
	v1.WriteOK(w, r, playerResponse{APIEnvelope: domain.Ok(), Player: d})
}
