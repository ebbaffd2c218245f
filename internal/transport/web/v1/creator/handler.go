package creator

import (
	"context"
	"log"
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

type Service interface {
	Profile(ctx context.Context, id string) (domain.CreatorWithStats, error)
}

type Handler struct {
	Log      *log.Logger
	Creators Service
}

type profileResponse struct {
	domain.APIEnvelope
	Creator domain.CreatorWithStats `json:"creator"`
}

// Profile godoc
// @Summary     Creator profile
// @Description Профиль автора и статистика по его видео (videos_count, total_views, total_likes).
// @Tags        creators
// @Produce     json
// @Param       id path string true "creator id"
// @Success     200 {object} profileResponse
// @Router      /api/creators/{id} [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	const op = "creators.profile"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	c, err := h.Creators.Profile(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "profile failed", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	v1.WriteOK(w, r, profileResponse{APIEnvelope: domain.Ok(), Creator: c})
}
