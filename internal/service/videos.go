// Package service реализует операции над видео, комментариями и авторами
// поверх хранилища документа.
package service

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/player"
)

const thumbnailBase = "https://via.placeholder.com/300x200?text="

// Videos — операции над коллекцией видео и комментариями к ним.
// Наружу всегда отдаются копии записей, а не ссылки внутрь хранилища.
type Videos struct {
	Store domain.LibraryStore
	Log   *log.Logger

	Now       func() time.Time // для тестов; по умолчанию time.Now
	CommentID func() string    // по умолчанию uuid v4
}

func NewVideos(store domain.LibraryStore, logger *log.Logger) *Videos {
	return &Videos{
		Store:     store,
		Log:       logger,
		Now:       func() time.Time { return time.Now().UTC() },
		CommentID: func() string { return uuid.NewString() },
	}
}

// List возвращает видео, подходящие под все заданные условия фильтра,
// в порядке хранения (новые загрузки — первыми).
func (s *Videos) List(_ context.Context, f domain.VideoFilter) []domain.Video {
	topic := strings.ToLower(f.Topic)
	level := strings.ToLower(f.SkillLevel)
	search := strings.ToLower(f.Search)

	out := []domain.Video{}
	s.Store.View(func(lib *domain.Library) {
		for _, v := range lib.Videos {
			if topic != "" && strings.ToLower(v.Topic) != topic {
				continue
			}
			if level != "" && strings.ToLower(v.SkillLevel) != level {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(v.Title), search) &&
				!strings.Contains(strings.ToLower(v.Description), search) {
				continue
			}
			out = append(out, v.Clone())
		}
	})
	return out
}

func (s *Videos) Get(_ context.Context, id string) (domain.Video, error) {
	var (
		out   domain.Video
		found bool
	)
	s.Store.View(func(lib *domain.Library) {
		if v := lib.VideoByID(id); v != nil {
			out, found = v.Clone(), true
		}
	})
	if !found {
		return domain.Video{}, domain.NotFound(domain.MsgVideoNotFound)
	}
	return out, nil
}

// Upload создаёт видео и ставит его в начало коллекции.
func (s *Videos) Upload(ctx context.Context, in domain.UploadInput) (domain.Video, error) {
	if domain.Blank(in.VideoURL) {
		return domain.Video{}, domain.Validation(domain.MsgVideoURLRequired)
	}
	thumbTitle := in.Title
	if thumbTitle == "" {
		thumbTitle = "Video"
	}
	in = in.WithDefaults()

	var created domain.Video
	err := s.Store.Update(ctx, func(lib *domain.Library) error {
		now := s.Now()
		created = domain.Video{
			ID:          nextVideoID(lib, now),
			Title:       in.Title,
			Description: in.Description,
			Topic:       in.Topic,
			SkillLevel:  in.SkillLevel,
			CreatorID:   in.CreatorID,
			VideoURL:    in.VideoURL,
			Thumbnail:   thumbnailBase + escapeComponent(thumbTitle),
			Duration:    domain.DefaultDuration,
			CreatedAt:   now,
			Comments:    []domain.Comment{},
		}
		lib.Videos = append([]domain.Video{created}, lib.Videos...)
		return nil
	})
	if err != nil {
		return domain.Video{}, err
	}
	s.Log.Printf("video uploaded id=%s url=%q", created.ID, created.VideoURL)
	return created.Clone(), nil
}

// Like увеличивает счётчик лайков ровно на 1 и возвращает новое значение.
func (s *Videos) Like(ctx context.Context, id string) (int64, error) {
	var likes int64
	err := s.Store.Update(ctx, func(lib *domain.Library) error {
		v := lib.VideoByID(id)
		if v == nil {
			return domain.NotFound(domain.MsgVideoNotFound)
		}
		v.Likes++
		likes = v.Likes
		return nil
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// Comments возвращает комментарии видео; для неизвестного id — пустой список.
func (s *Videos) Comments(_ context.Context, id string) []domain.Comment {
	out := []domain.Comment{}
	s.Store.View(func(lib *domain.Library) {
		if v := lib.VideoByID(id); v != nil {
			out = append(out, v.Comments...)
		}
	})
	return out
}

// PostComment добавляет комментарий и возвращает весь обновлённый список.
func (s *Videos) PostComment(ctx context.Context, id string, in domain.CommentInput) ([]domain.Comment, error) {
	var out []domain.Comment
	err := s.Store.Update(ctx, func(lib *domain.Library) error {
		v := lib.VideoByID(id)
		if v == nil {
			return domain.NotFound(domain.MsgVideoNotFound)
		}
		if domain.Blank(in.Text) {
			return domain.Validation(domain.MsgCommentEmpty)
		}
		username := in.Username
		if username == "" {
			username = domain.DefaultUsername
		}
		v.Comments = append(v.Comments, domain.Comment{
			ID:        s.uniqueCommentID(v.Comments),
			Username:  username,
			Text:      strings.TrimSpace(in.Text),
			Timestamp: s.Now(),
		})
		out = append([]domain.Comment{}, v.Comments...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Player классифицирует URL сохранённого видео.
func (s *Videos) Player(ctx context.Context, id string) (player.Descriptor, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return player.Descriptor{}, err
	}
	return player.Classify(v.VideoURL), nil
}

func (s *Videos) uniqueCommentID(existing []domain.Comment) string {
	for {
		id := s.CommentID()
		taken := false
		for _, c := range existing {
			if c.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

// nextVideoID — миллисекунды от эпохи; при совпадении берём следующее свободное число.
func nextVideoID(lib *domain.Library, now time.Time) string {
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if lib.VideoByID(id) == nil {
			return id
		}
		n++
	}
}

// escapeComponent кодирует строку как encodeURIComponent: пробел — %20, а не "+".
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
