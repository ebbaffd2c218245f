// Package player сопоставляет произвольный URL видео со встраиваемым плеером.
//
// Правила проверяются в фиксированном порядке, срабатывает первое подходящее.
// Порядок важен: один URL может подходить под несколько эвристик
// (например, ссылка Vimeo со словом "player").
package player

import (
	"strings"
	"unicode/utf8"
)

// Kind — вариант дескриптора плеера.
type Kind string

const (
	KindIframe      Kind = "iframe"
	KindVideo       Kind = "video"
	KindUnsupported Kind = "unsupported"
)

type Provider string

const (
	ProviderYouTube     Provider = "youtube"
	ProviderVimeo       Provider = "vimeo"
	ProviderDailymotion Provider = "dailymotion"
	ProviderEmbed       Provider = "embed" // неизвестный провайдер со своим iframe
	ProviderHLS         Provider = "hls"
	ProviderFile        Provider = "file"
	ProviderDirect      Provider = "direct" // http(s) без известного расширения
)

const (
	youTubeEmbedBase     = "https://www.youtube.com/embed/"
	vimeoEmbedBase       = "https://player.vimeo.com/video/"
	dailymotionEmbedBase = "https://www.dailymotion.com/embed/video/"

	MIMEHLS = "application/x-mpegURL"

	ReasonUnsupported = "Video format not supported"
	ReasonMalformed   = "Malformed provider URL"

	diagURLLimit = 50
)

// Descriptor — описание плеера: Iframe{src}, NativeVideo{src, mimeType} или Unsupported{reason}.
type Descriptor struct {
	Kind     Kind     `json:"kind"`
	Provider Provider `json:"provider,omitempty"`
	Src      string   `json:"src,omitempty"`
	MIMEType string   `json:"mime_type,omitempty"`
	HLS      bool     `json:"hls,omitempty"`
	Reason   string   `json:"reason,omitempty"`
	URL      string   `json:"url,omitempty"` // первые 50 символов исходного URL (только для unsupported)
}

func (d Descriptor) Supported() bool { return d.Kind != KindUnsupported }

func iframe(p Provider, src string) Descriptor {
	return Descriptor{Kind: KindIframe, Provider: p, Src: src}
}

func native(p Provider, src, mime string) Descriptor {
	return Descriptor{Kind: KindVideo, Provider: p, Src: src, MIMEType: mime, HLS: p == ProviderHLS}
}

func unsupported(reason, raw string) Descriptor {
	return Descriptor{Kind: KindUnsupported, Reason: reason, URL: truncate(raw, diagURLLimit)}
}

// rule: match решает, относится ли URL к правилу; build строит дескриптор.
// Если build не смог извлечь id, он возвращает ok=false и классификация
// заканчивается как unsupported, а не битым embed-URL.
type rule struct {
	name  string
	match func(u string) bool
	build func(u string) (Descriptor, bool)
}

var rules = []rule{
	{
		name:  "youtube watch",
		match: func(u string) bool { return strings.Contains(u, "youtube.com/watch") },
		build: func(u string) (Descriptor, bool) {
			id, ok := between(u, "v=", "&")
			if !ok {
				return Descriptor{}, false
			}
			return iframe(ProviderYouTube, youTubeEmbedBase+id), true
		},
	},
	{
		name:  "youtube short",
		match: func(u string) bool { return strings.Contains(u, "youtu.be/") },
		build: func(u string) (Descriptor, bool) {
			id, ok := between(u, "youtu.be/", "?")
			if !ok {
				return Descriptor{}, false
			}
			return iframe(ProviderYouTube, youTubeEmbedBase+id), true
		},
	},
	{
		name:  "youtube embed",
		match: func(u string) bool { return strings.Contains(u, "youtube.com/embed") },
		build: func(u string) (Descriptor, bool) { return iframe(ProviderYouTube, u), true },
	},
	{
		name:  "vimeo",
		match: func(u string) bool { return strings.Contains(u, "vimeo.com") },
		build: func(u string) (Descriptor, bool) {
			id, ok := lastSegment(u)
			if !ok {
				return Descriptor{}, false
			}
			return iframe(ProviderVimeo, vimeoEmbedBase+id), true
		},
	},
	{
		name: "generic iframe",
		match: func(u string) bool {
			return strings.Contains(u, "iframe") || strings.Contains(u, "player")
		},
		build: func(u string) (Descriptor, bool) { return iframe(ProviderEmbed, u), true },
	},
	// только по окончанию: ".m3u8?token=..." уходит в http fallback
	{
		name:  "hls",
		match: func(u string) bool { return strings.HasSuffix(strings.ToLower(u), ".m3u8") },
		build: func(u string) (Descriptor, bool) { return native(ProviderHLS, u, MIMEHLS), true },
	},
	{
		name: "video file",
		match: func(u string) bool {
			_, ok := fileMIME(u)
			return ok
		},
		build: func(u string) (Descriptor, bool) {
			mime, _ := fileMIME(u)
			return native(ProviderFile, u, mime), true
		},
	},
	{
		name:  "dailymotion",
		match: func(u string) bool { return strings.Contains(u, "dailymotion.com") },
		build: func(u string) (Descriptor, bool) {
			id, ok := between(u, "video/", "_")
			if !ok {
				return Descriptor{}, false
			}
			return iframe(ProviderDailymotion, dailymotionEmbedBase+id), true
		},
	},
	{
		name:  "http fallback",
		match: func(u string) bool { return strings.HasPrefix(u, "http") },
		build: func(u string) (Descriptor, bool) {
			if strings.Contains(u, "/embed") || strings.Contains(u, "/player") || strings.Contains(u, "iframe") {
				return iframe(ProviderEmbed, u), true
			}
			return native(ProviderDirect, u, ""), true
		},
	},
}

// Classify возвращает дескриптор плеера для URL. Функция чистая и безопасна
// для конкурентного вызова.
func Classify(rawURL string) Descriptor {
	u := strings.TrimSpace(rawURL)
	if u == "" {
		return unsupported(ReasonUnsupported, u)
	}
	for _, r := range rules {
		if !r.match(u) {
			continue
		}
		d, ok := r.build(u)
		if !ok {
			return unsupported(ReasonMalformed+" ("+r.name+")", u)
		}
		return d
	}
	return unsupported(ReasonUnsupported, u)
}

// between возвращает подстроку после первого вхождения start до sep
// (или до конца строки). Пустой результат — неудача.
func between(s, start, sep string) (string, bool) {
	i := strings.Index(s, start)
	if i < 0 {
		return "", false
	}
	rest := s[i+len(start):]
	if j := strings.Index(rest, sep); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// lastSegment — последний сегмент пути без query/fragment.
func lastSegment(s string) (string, bool) {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	seg := s[strings.LastIndex(s, "/")+1:]
	if seg == "" {
		return "", false
	}
	return seg, true
}

var fileTypes = map[string]string{
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogg":  "video/ogg",
	"mov":  "video/mp4",
	"avi":  "video/avi",
	"mkv":  "video/x-matroska",
}

// fileMIME определяет MIME по расширению в конце URL (без учёта регистра).
func fileMIME(u string) (string, bool) {
	dot := strings.LastIndex(u, ".")
	if dot < 0 {
		return "", false
	}
	mime, ok := fileTypes[strings.ToLower(u[dot+1:])]
	return mime, ok
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
