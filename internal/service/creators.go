package service

import (
	"context"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
)

// Creators собирает профиль автора со статистикой по его видео.
type Creators struct {
	Store domain.LibraryStore
}

func NewCreators(store domain.LibraryStore) *Creators {
	return &Creators{Store: store}
}

// Profile считает videos_count/total_views/total_likes полным проходом по видео.
// Статистика не кэшируется и не сохраняется.
func (s *Creators) Profile(_ context.Context, id string) (domain.CreatorWithStats, error) {
	var (
		out   domain.CreatorWithStats
		found bool
	)
	s.Store.View(func(lib *domain.Library) {
		c := lib.CreatorByID(id)
		if c == nil {
			return
		}
		found = true
		out.Creator = *c
		for _, v := range lib.Videos {
			if v.CreatorID != id {
				continue
			}
			out.VideosCount++
			out.TotalViews += v.Views
			out.TotalLikes += v.Likes
		}
	})
	if !found {
		return domain.CreatorWithStats{}, domain.NotFound(domain.MsgCreatorNotFound)
	}
	return out, nil
}
