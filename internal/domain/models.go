package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Комментарий к видео. После создания не меняется и не удаляется.
type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Видео. Удаления нет: запись только создаётся и обновляется (likes, comments).
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Topic       string    `json:"topic"`
	SkillLevel  string    `json:"skill_level"`
	CreatorID   string    `json:"creator_id"` // мягкая ссылка, целостность не проверяется
	VideoURL    string    `json:"video_url"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    Duration  `json:"duration"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	Comments    []Comment `json:"comments"`
}

// UnmarshalJSON читает и старые записи, где время создания лежит в "timestamp".
func (v *Video) UnmarshalJSON(b []byte) error {
	type plain Video
	aux := struct {
		*plain
		Timestamp *time.Time `json:"timestamp"`
	}{plain: (*plain)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if v.CreatedAt.IsZero() && aux.Timestamp != nil {
		v.CreatedAt = *aux.Timestamp
	}
	return nil
}

// Clone возвращает копию с собственным срезом комментариев.
func (v Video) Clone() Video {
	out := v
	out.Comments = make([]Comment, len(v.Comments))
	copy(out.Comments, v.Comments)
	return out
}

type Creator struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Followers int64  `json:"followers"`
	Avatar    string `json:"avatar"`
	Email     string `json:"email"`
	Type      string `json:"type"`
}

// CreatorWithStats — профиль автора с вычисляемыми полями (не сохраняются).
type CreatorWithStats struct {
	Creator
	VideosCount int   `json:"videos_count"`
	TotalViews  int64 `json:"total_views"`
	TotalLikes  int64 `json:"total_likes"`
}

// Курс есть только в сид-данных, эндпоинтов нет.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CreatorID   string    `json:"creator_id"`
	Videos      []string  `json:"videos"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Library — весь сохраняемый документ.
type Library struct {
	Videos   []Video   `json:"videos"`
	Creators []Creator `json:"creators"`
	Courses  []Course  `json:"courses,omitempty"`
}

// Normalize заменяет отсутствующие коллекции пустыми.
func (l *Library) Normalize() {
	if l.Videos == nil {
		l.Videos = []Video{}
	}
	if l.Creators == nil {
		l.Creators = []Creator{}
	}
	for i := range l.Videos {
		if l.Videos[i].Comments == nil {
			l.Videos[i].Comments = []Comment{}
		}
	}
}

// VideoByID возвращает указатель на запись внутри коллекции (или nil).
func (l *Library) VideoByID(id string) *Video {
	for i := range l.Videos {
		if l.Videos[i].ID == id {
			return &l.Videos[i]
		}
	}
	return nil
}

func (l *Library) CreatorByID(id string) *Creator {
	for i := range l.Creators {
		if l.Creators[i].ID == id {
			return &l.Creators[i]
		}
	}
	return nil
}

// Duration хранит длительность как есть: сид-данные пишут секунды числом,
// загрузка пишет строку вида "1:30".
type Duration string

func (d Duration) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte(`""`), nil
	}
	if _, err := strconv.ParseFloat(string(d), 64); err == nil && json.Valid([]byte(d)) {
		return []byte(d), nil
	}
	return json.Marshal(string(d))
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Duration(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Duration(n.String())
	return nil
}
