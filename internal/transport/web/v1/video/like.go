package video

import (
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

// Like godoc
// @Summary     Like video
// @Tags        videos
// @Produce     json
// @Param       id path string true "video id"
// @Success     200 {object} likeResponse
// @Router      /api/videos/{id}/like [post]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	const op = "videos.like"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	likes, err := h.Videos.Like(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "like failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "liked", "id", id, "likes", likes)
	v1.WriteOK(w, r, likeResponse{APIEnvelope: domain.Ok(), Likes: likes})
}
