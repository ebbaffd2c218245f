package video

import (
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/logx"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
	v1 "github.com/NAMITJAIN06/bite-learning/internal/transport/web/v1"
)

const MsgUploaded = "Video uploaded successfully"

// Upload godoc
// @Summary     Upload video
// @Description Создаёт запись видео по ссылке. Обязателен только video_url, остальные поля получают значения по умолчанию.
// @Tags        videos
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       request body domain.UploadInput true "video fields"
// @Success     200 {object} videoResponse
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/videos/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "videos.upload"
	reqID := mw.RequestIDFromCtx(r.Context())

	var in domain.UploadInput
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
		in = domain.UploadInput{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Topic:       r.FormValue("topic"),
			SkillLevel:  r.FormValue("skill_level"),
			CreatorID:   r.FormValue("creator_id"),
			VideoURL:    r.FormValue("video_url"),
		}
	}
	logx.Info(h.Log, reqID, op, "start", "title", in.Title, "video_url", in.VideoURL)

	v, err := h.Videos.Upload(r.Context(), in)
	if err != nil {
		logx.Error(h.Log, reqID, op, "upload rejected", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "saved", "id", v.ID)
	v1.WriteOK(w, r, videoResponse{APIEnvelope: domain.OkMessage(MsgUploaded), Video: v})
}
