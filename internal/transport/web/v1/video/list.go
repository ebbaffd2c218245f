package video

import (
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

// List godoc
// @Summary     List videos
// @Description Все условия объединяются по AND, сравнение без учёта регистра.
// @Tags        videos
// @Produce     json
// @Param       topic       query string false "topic (exact match)"
// @Param       skill_level query string false "skill level (exact match)"
// @Param       search      query string false "substring of title or description"
// @Success     200 {object} listResponse
// @Router      /api/videos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "videos.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	q := r.URL.Query()
	f := domain.VideoFilter{
		Topic:      q.Get("topic"),
		SkillLevel: q.Get("skill_level"),
		Search:     q.Get("search"),
	}
	videos := h.Videos.List(r.Context(), f)

	logx.Info(h.Log, reqID, op, "ok", "count", len(videos), "topic", f.Topic, "skill_level", f.SkillLevel, "search", f.Search)
	v1.WriteOK(w, r, listResponse{APIEnvelope: domain.Ok(), Videos: videos})
}
