package video

import (
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

// Comments godoc
// @Summary     List comments
// @Description Для неизвестного видео возвращается пустой список, а не ошибка.
// @Tags        comments
// @Produce     json
// @Param       id path string true "video id"
// @Success     200 {object} commentsResponse
// @Router      /api/videos/{id}/comments [get]
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	comments := h.Videos.Comments(r.Context(), r.PathValue("id"))
	v1.WriteOK(w, r, commentsResponse{APIEnvelope: domain.Ok(), Comments: comments})
}

// PostComment godoc
// @Summary     Post comment
// @Tags        comments
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       id      path string              true "video id"
// @Param       request body domain.CommentInput true "username (optional), text"
// @Success     200 {object} commentsResponse
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/videos/{id}/comment [post]
func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	const op = "videos.comment"
	reqID := mw.RequestIDFromCtx(r.Context())
	id := r.PathValue("id")

	var in domain.CommentInput
	if v1.IsJSON(r) {
		if err := v1.DecodeJSON(r, &in); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, err)
			return
		}
	} else {
		if err := v1.ParseForm(r); err != nil {
			logx.Error(h.Log, reqID, op, "bad form", err)
			v1.WriteDomainError(w, r, err)
			return
		}
		in.Username = r.FormValue("username")
		in.Text = r.FormValue("text")
	}

	comments, err := h.Videos.PostComment(r.Context(), id, in)
	if err != nil {
		logx.Error(h.Log, reqID, op, "comment rejected", err, "id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "comment added", "id", id, "count", len(comments))
	v1.WriteOK(w, r, commentsResponse{APIEnvelope: domain.Ok(), Comments: comments})
}
