package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NAMITJAIN06/bite-learning/internal/config"
	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/infra/storage/jsonfile"
	"github.com/NAMITJAIN06/bite-learning/internal/service"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web"
)

type testEnv struct {
	handler http.Handler
	path    string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	path := filepath.Join(t.TempDir(), "videos-data.json")
	store := jsonfile.Open(context.Background(), logger, path, nil)

	cfg := &config.Config{AppPort: ":0", CORSOrigins: "*"}
	srv := web.New(logger, cfg, web.Services{
		Videos:   service.NewVideos(store, logger),
		Creators: service.NewCreators(store),
	}, web.Probes{Store: store})
	return testEnv{handler: srv.Handler(), path: path}
}

func (e testEnv) do(t *testing.T, method, target string, body io.Reader, contentType string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func (e testEnv) postJSON(t *testing.T, target string, v any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return e.do(t, http.MethodPost, target, bytes.NewReader(b), "application/json")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec, out := env.do(t, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "success", out["status"])
	assert.Equal(t, "Backend is healthy", out["message"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, out = env.do(t, http.MethodGet, "/api/readyz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", out["status"])
}

func TestListVideos(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.do(t, http.MethodGet, "/api/videos", nil, "")
	assert.Equal(t, true, out["success"])
	assert.Len(t, out["videos"], 3)

	q := url.Values{"skill_level": {"intermediate"}}
	_, out = env.do(t, http.MethodGet, "/api/videos?"+q.Encode(), nil, "")
	videos := out["videos"].([]any)
	require.Len(t, videos, 1)
	assert.Equal(t, "vid2", videos[0].(map[string]any)["id"])

	_, out = env.do(t, http.MethodGet, "/api/videos?topic=cooking", nil, "")
	assert.Equal(t, true, out["success"])
	assert.Equal(t, []any{}, out["videos"])
}

func TestGetVideo(t *testing.T) {
	env := newTestEnv(t)

	rec, out := env.do(t, http.MethodGet, "/api/videos/vid1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	video := out["video"].(map[string]any)
	assert.Equal(t, "vid1", video["id"])
	assert.Equal(t, float64(60), video["duration"])
	assert.Equal(t, []any{}, video["comments"])

	rec, out = env.do(t, http.MethodGet, "/api/videos/nope", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Video not found"}, out)
}

func TestUploadVideo(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.postJSON(t, "/api/videos/upload", map[string]string{
		"title":     "Go in 60s",
		"video_url": " https://vimeo.com/555444 ",
	})
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Video uploaded successfully", out["message"])
	video := out["video"].(map[string]any)
	assert.Equal(t, "https://vimeo.com/555444", video["video_url"])
	assert.Equal(t, "Programming", video["topic"])
	assert.Equal(t, "1:30", video["duration"])
	id := video["id"].(string)

	// новое видео первым в списке
	_, out = env.do(t, http.MethodGet, "/api/videos", nil, "")
	videos := out["videos"].([]any)
	require.Len(t, videos, 4)
	assert.Equal(t, id, videos[0].(map[string]any)["id"])

	// сохранено на диск
	lib, err := jsonfile.Load(env.path)
	require.NoError(t, err)
	assert.Equal(t, id, lib.Videos[0].ID)

	_, out = env.do(t, http.MethodGet, "/api/videos/"+id+"/player", nil, "")
	p := out["player"].(map[string]any)
	assert.Equal(t, "iframe", p["kind"])
	assert.Equal(t, "https://player.vimeo.com/video/555444", p["src"])
}

func TestUploadVideoForm(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"video_url": {"https://example.com/a.mp4"}, "skill_level": {"Advanced"}}
	_, out := env.do(t, http.MethodPost, "/api/videos/upload", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	assert.Equal(t, true, out["success"])
	video := out["video"].(map[string]any)
	assert.Equal(t, "Advanced", video["skill_level"])
	assert.Equal(t, "Untitled Video", video["title"])
}

func TestUploadVideoMultipart(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mpw := multipart.NewWriter(&body)
	require.NoError(t, mpw.WriteField("title", "From FormData"))
	require.NoError(t, mpw.WriteField("video_url", "https://youtu.be/xyz789"))
	require.NoError(t, mpw.Close())

	_, out := env.do(t, http.MethodPost, "/api/videos/upload", &body, mpw.FormDataContentType())
	assert.Equal(t, true, out["success"])
	video := out["video"].(map[string]any)
	assert.Equal(t, "From FormData", video["title"])
	assert.Equal(t, "https://youtu.be/xyz789", video["video_url"])
}

func TestPostCommentMultipart(t *testing.T) {
	env := newTestEnv(t)

	var body bytes.Buffer
	mpw := multipart.NewWriter(&body)
	require.NoError(t, mpw.WriteField("username", "ann"))
	require.NoError(t, mpw.WriteField("text", "from a form"))
	require.NoError(t, mpw.Close())

	_, out := env.do(t, http.MethodPost, "/api/videos/vid1/comment", &body, mpw.FormDataContentType())
	assert.Equal(t, true, out["success"])
	comments := out["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Equal(t, "ann", comments[0].(map[string]any)["username"])
	assert.Equal(t, "from a form", comments[0].(map[string]any)["text"])
}

func TestUploadVideoBrokenMultipart(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.do(t, http.MethodPost, "/api/videos/upload", strings.NewReader("garbage"), "multipart/form-data; boundary=xyz")
	assert.Equal(t, map[string]any{"success": false, "message": "Invalid request body"}, out)
}

func TestUploadVideoRejects(t *testing.T) {
	env := newTestEnv(t)

	rec, out := env.postJSON(t, "/api/videos/upload", map[string]string{"title": "x", "video_url": "   "})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Video URL is required"}, out)

	rec, out = env.do(t, http.MethodPost, "/api/videos/upload", strings.NewReader("{bad"), "application/json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Invalid request body"}, out)

	_, out = env.do(t, http.MethodGet, "/api/videos", nil, "")
	assert.Len(t, out["videos"], 3)
}

func TestLikeVideo(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.do(t, http.MethodPost, "/api/videos/vid1/like", nil, "")
	assert.Equal(t, map[string]any{"success": true, "likes": float64(46)}, out)
	_, out = env.do(t, http.MethodPost, "/api/videos/vid1/like", nil, "")
	assert.Equal(t, float64(47), out["likes"])

	_, out = env.do(t, http.MethodPost, "/api/videos/nope/like", nil, "")
	assert.Equal(t, map[string]any{"success": false, "message": "Video not found"}, out)
}

func TestComments(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.do(t, http.MethodGet, "/api/videos/nope/comments", nil, "")
	assert.Equal(t, map[string]any{"success": true, "comments": []any{}}, out)

	_, out = env.postJSON(t, "/api/videos/vid2/comment", map[string]string{"text": "  nice  "})
	assert.Equal(t, true, out["success"])
	comments := out["comments"].([]any)
	require.Len(t, comments, 1)
	c := comments[0].(map[string]any)
	assert.Equal(t, "Anonymous", c["username"])
	assert.Equal(t, "nice", c["text"])
	assert.NotEmpty(t, c["id"])
	assert.NotEmpty(t, c["timestamp"])

	_, out = env.postJSON(t, "/api/videos/vid2/comment", map[string]string{"username": "ann", "text": "again"})
	assert.Len(t, out["comments"], 2)

	_, out = env.do(t, http.MethodGet, "/api/videos/vid2/comments", nil, "")
	assert.Len(t, out["comments"], 2)

	_, out = env.postJSON(t, "/api/videos/vid2/comment", map[string]string{"text": " "})
	assert.Equal(t, map[string]any{"success": false, "message": "Comment cannot be empty"}, out)

	_, out = env.postJSON(t, "/api/videos/nope/comment", map[string]string{"text": "hi"})
	assert.Equal(t, map[string]any{"success": false, "message": "Video not found"}, out)
}

func TestCreatorProfile(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.do(t, http.MethodGet, "/api/creators/user1", nil, "")
	assert.Equal(t, true, out["success"])
	c := out["creator"].(map[string]any)
	assert.Equal(t, "educator1", c["username"])
	assert.Equal(t, float64(3), c["videos_count"])
	assert.Equal(t, float64(1691), c["total_views"])
	assert.Equal(t, float64(424), c["total_likes"])

	_, out = env.do(t, http.MethodGet, "/api/creators/ghost", nil, "")
	assert.Equal(t, map[string]any{"success": false, "message": "Creator not found"}, out)
}

func TestClassifyEndpoint(t *testing.T) {
	env := newTestEnv(t)

	q := url.Values{"url": {"https://www.youtube.com/watch?v=abc123&t=5"}}
	_, out := env.do(t, http.MethodGet, "/api/player?"+q.Encode(), nil, "")
	p := out["player"].(map[string]any)
	assert.Equal(t, "iframe", p["kind"])
	assert.Equal(t, "https://www.youtube.com/embed/abc123", p["src"])

	_, out = env.do(t, http.MethodGet, "/api/player?url=not-a-url", nil, "")
	assert.Equal(t, true, out["success"])
	p = out["player"].(map[string]any)
	assert.Equal(t, "unsupported", p["kind"])
	assert.Equal(t, "not-a-url", p["url"])

	_, out = env.do(t, http.MethodGet, "/api/player", nil, "")
	assert.Equal(t, map[string]any{"success": false, "message": domain.MsgURLRequired}, out)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/videos/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
