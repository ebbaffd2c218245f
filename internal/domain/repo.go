package domain

import "context"

// Фильтры списка видео. Все условия объединяются по AND, сравнение без учёта регистра.
type VideoFilter struct {
	Topic      string // точное совпадение
	SkillLevel string // точное совпадение
	Search     string // подстрока в title или description
}

type UploadInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Topic       string `json:"topic"`
	SkillLevel  string `json:"skill_level"`
	CreatorID   string `json:"creator_id"`
	VideoURL    string `json:"video_url"`
}

type CommentInput struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// LibraryStore владеет коллекциями на всё время жизни процесса.
// View — чтение под общей блокировкой; Update — изменение под эксклюзивной
// блокировкой с последующим сохранением всего документа на диск.
type LibraryStore interface {
	View(fn func(lib *Library))
	Update(ctx context.Context, fn func(lib *Library) error) error
}
