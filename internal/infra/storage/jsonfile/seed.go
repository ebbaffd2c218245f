package jsonfile

import (
	"time"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
)

// Seed — встроенный набор данных на случай, когда файла нет или он битый.
func Seed(now time.Time) domain.Library {
	day := 24 * time.Hour
	lib := domain.Library{
		Videos: []domain.Video{
			{
				ID:          "vid1",
				Title:       "JavaScript Basics in 60 sec",
				Description: "Learn JS variables and functions",
				CreatorID:   "user1",
				Duration:    "60",
				Topic:       "Programming",
				SkillLevel:  "Beginner",
				Views:       234,
				Thumbnail:   "https://via.placeholder.com/300x200?text=JS+Basics",
				VideoURL:    "https://www.youtube.com/embed/PkZNo7MFNFg",
				CreatedAt:   now.Add(-day),
				Likes:       45,
			},
			{
				ID:          "vid2",
				Title:       "Python List Comprehension",
				Description: "Master Python lists in 90 seconds",
				CreatorID:   "user1",
				Duration:    "90",
				Topic:       "Programming",
				SkillLevel:  "Intermediate",
				Views:       567,
				Thumbnail:   "https://via.placeholder.com/300x200?text=Python",
				VideoURL:    "https://www.youtube.com/embed/DZ4sSfXtpQU",
				CreatedAt:   now.Add(-2 * day),
				Likes:       123,
			},
			{
				ID:          "vid3",
				Title:       "React Hooks Explained",
				Description: "Understanding React Hooks in under 2 minutes",
				CreatorID:   "user1",
				Duration:    "120",
				Topic:       "Programming",
				SkillLevel:  "Advanced",
				Views:       890,
				Thumbnail:   "https://via.placeholder.com/300x200?text=React",
				VideoURL:    "https://www.youtube.com/embed/TNhaISOUy6Q",
				CreatedAt:   now.Add(-3 * day),
				Likes:       256,
			},
		},
		Creators: []domain.Creator{
			{
				ID:        "user1",
				Username:  "educator1",
				Bio:       "Teaching technology one video at a time",
				Followers: 120,
				Avatar:    "👨‍🏫",
				Email:     "edu@example.com",
				Type:      "creator",
			},
		},
		Courses: []domain.Course{
			{
				ID:          "course1",
				Title:       "Web Development 101",
				CreatorID:   "user1",
				Videos:      []string{"vid1", "vid2"},
				Description: "Complete web dev basics",
				CreatedAt:   now,
			},
		},
	}
	lib.Normalize()
	return lib
}
