package player_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NAMITJAIN06/bite-learning/internal/player"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		kind     player.Kind
		provider player.Provider
		src      string
		mime     string
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=abc123&t=5", player.KindIframe, player.ProviderYouTube, "https://www.youtube.com/embed/abc123", ""},
		{"youtube watch no extra params", "https://youtube.com/watch?v=QQ", player.KindIframe, player.ProviderYouTube, "https://www.youtube.com/embed/QQ", ""},
		{"youtube short", "https://youtu.be/xyz789?si=1", player.KindIframe, player.ProviderYouTube, "https://www.youtube.com/embed/xyz789", ""},
		{"youtube embed passthrough", "https://www.youtube.com/embed/PkZNo7MFNFg", player.KindIframe, player.ProviderYouTube, "https://www.youtube.com/embed/PkZNo7MFNFg", ""},
		{"vimeo", "https://vimeo.com/555444", player.KindIframe, player.ProviderVimeo, "https://player.vimeo.com/video/555444", ""},
		{"vimeo with query", "https://vimeo.com/channels/staff/555444?share=copy", player.KindIframe, player.ProviderVimeo, "https://player.vimeo.com/video/555444", ""},
		{"vimeo wins over player keyword", "https://player.vimeo.com/video/777", player.KindIframe, player.ProviderVimeo, "https://player.vimeo.com/video/777", ""},
		{"generic iframe", "https://cdn.example.com/iframe/42", player.KindIframe, player.ProviderEmbed, "https://cdn.example.com/iframe/42", ""},
		{"player keyword beats file extension", "https://example.com/player/clip.mp4", player.KindIframe, player.ProviderEmbed, "https://example.com/player/clip.mp4", ""},
		{"hls", "https://example.com/clip.m3u8", player.KindVideo, player.ProviderHLS, "https://example.com/clip.m3u8", player.MIMEHLS},
		{"mp4", "https://example.com/video.mp4", player.KindVideo, player.ProviderFile, "https://example.com/video.mp4", "video/mp4"},
		{"mov upper case", "https://example.com/a.MOV", player.KindVideo, player.ProviderFile, "https://example.com/a.MOV", "video/mp4"},
		{"mkv", "https://example.com/a.mkv", player.KindVideo, player.ProviderFile, "https://example.com/a.mkv", "video/x-matroska"},
		{"webm", "https://example.com/a.webm", player.KindVideo, player.ProviderFile, "https://example.com/a.webm", "video/webm"},
		{"avi", "https://example.com/a.avi", player.KindVideo, player.ProviderFile, "https://example.com/a.avi", "video/avi"},
		{"relative file", "clips/a.ogg", player.KindVideo, player.ProviderFile, "clips/a.ogg", "video/ogg"},
		{"dailymotion", "https://www.dailymotion.com/video/x7tgad0_some-title", player.KindIframe, player.ProviderDailymotion, "https://www.dailymotion.com/embed/video/x7tgad0", ""},
		{"http embed fallback", "https://example.com/embed/99", player.KindIframe, player.ProviderEmbed, "https://example.com/embed/99", ""},
		{"http direct fallback", "https://example.com/stream?id=5", player.KindVideo, player.ProviderDirect, "https://example.com/stream?id=5", ""},
		{"trimmed", "  https://youtu.be/abc  ", player.KindIframe, player.ProviderYouTube, "https://www.youtube.com/embed/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := player.Classify(tt.url)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.provider, d.Provider)
			assert.Equal(t, tt.src, d.Src)
			assert.Equal(t, tt.mime, d.MIMEType)
			assert.True(t, d.Supported())
		})
	}
}

func TestClassifyHLSFlag(t *testing.T) {
	d := player.Classify("https://example.com/live/index.m3u8")
	require.Equal(t, player.KindVideo, d.Kind)
	assert.True(t, d.HLS)

	d = player.Classify("https://example.com/video.mp4")
	assert.False(t, d.HLS)
}

// Плейлист распознаётся только по окончанию URL: с query-строкой это уже
// прямая ссылка без MIME.
func TestClassifyHLSWithQueryIsDirect(t *testing.T) {
	const u = "https://cdn.example.com/x.m3u8?token=abc"
	d := player.Classify(u)
	require.Equal(t, player.KindVideo, d.Kind)
	assert.Equal(t, player.ProviderDirect, d.Provider)
	assert.Equal(t, u, d.Src)
	assert.Empty(t, d.MIMEType)
	assert.False(t, d.HLS)
	assert.True(t, d.Supported())

	d = player.Classify("https://cdn.example.com/X.M3U8")
	assert.Equal(t, player.ProviderHLS, d.Provider)
	assert.True(t, d.HLS)
}

func TestClassifyUnsupported(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"not a url", "not-a-url"},
		{"empty", ""},
		{"whitespace", "   "},
		{"ftp", "ftp://example.com/file.bin"},
		{"youtube watch without v", "https://www.youtube.com/watch?list=PL1"},
		{"youtube watch empty v", "https://www.youtube.com/watch?v=&t=5"},
		{"youtu.be without id", "https://youtu.be/?si=1"},
		{"vimeo trailing slash", "https://vimeo.com/"},
		{"dailymotion without video path", "https://www.dailymotion.com/user/someone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := player.Classify(tt.url)
			assert.Equal(t, player.KindUnsupported, d.Kind)
			assert.False(t, d.Supported())
			assert.Empty(t, d.Src)
			assert.NotEmpty(t, d.Reason)
		})
	}
}

func TestClassifyUnsupportedTruncatesURL(t *testing.T) {
	long := "not-a-url-" + strings.Repeat("x", 100)
	d := player.Classify(long)
	require.Equal(t, player.KindUnsupported, d.Kind)
	assert.Equal(t, player.ReasonUnsupported, d.Reason)
	assert.Len(t, d.URL, 50)
	assert.Equal(t, long[:50], d.URL)
}

func TestClassifyMalformedProviderReason(t *testing.T) {
	d := player.Classify("https://www.youtube.com/watch?list=PL1")
	assert.True(t, strings.HasPrefix(d.Reason, player.ReasonMalformed))
	assert.Equal(t, "https://www.youtube.com/watch?list=PL1", d.URL)
}
