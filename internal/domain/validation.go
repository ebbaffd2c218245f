package domain

import "strings"

// Проверки только на наличие значения.

func Blank(s string) bool { return strings.TrimSpace(s) == "" }

// Значения по умолчанию для загрузки видео
const (
	DefaultTitle      = "Untitled Video"
	DefaultTopic      = "Programming"
	DefaultSkillLevel = "Beginner"
	DefaultCreatorID  = "user1"
	DefaultDuration   = Duration("1:30")
	DefaultUsername   = "Anonymous"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// WithDefaults заполняет пустые поля загрузки.
func (in UploadInput) WithDefaults() UploadInput {
	in.Title = orDefault(in.Title, DefaultTitle)
	in.Topic = orDefault(in.Topic, DefaultTopic)
	in.SkillLevel = orDefault(in.SkillLevel, DefaultSkillLevel)
	in.CreatorID = orDefault(in.CreatorID, DefaultCreatorID)
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	return in
}
