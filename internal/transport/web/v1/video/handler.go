package video

import (
	"context"
	"log"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/player"
)

// Service — то, что обработчикам нужно от сервиса видео.
type Service interface {
	List(ctx context.Context, f domain.VideoFilter) []domain.Video
	Get(ctx context.Context, id string) (domain.Video, error)
	Upload(ctx context.Context, in domain.UploadInput) (domain.Video, error)
	Like(ctx context.Context, id string) (int64, error)
	Comments(ctx context.Context, id string) []domain.Comment
	PostComment(ctx context.Context, id string, in domain.CommentInput) ([]domain.Comment, error)
	Player(ctx context.Context, id string) (player.Descriptor, error)
}

type Handler struct {
	Log    *log.Logger
	Videos Service
}

type listResponse struct {
	domain.APIEnvelope
	Videos []domain.Video `json:"videos"`
}

type videoResponse struct {
	domain.APIEnvelope
	Video domain.Video `json:"video"`
}

type likeResponse struct {
	domain.APIEnvelope
	Likes int64 `json:"likes"`
}

type commentsResponse struct {
	domain.APIEnvelope
	Comments []domain.Comment `json:"comments"`
}

type playerResponse struct {
	domain.APIEnvelope
	Player player.Descriptor `json:"player"`
}
