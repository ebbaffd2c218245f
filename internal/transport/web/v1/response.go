package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web/mw"
)

// MapDomainError решает HTTP-статус и конверт.
// Ошибки валидации и "не найдено" отдаются с 200 и success=false.
func MapDomainError(err error) (httpStatus int, env domain.APIEnvelope) {
	var de *domain.Error
	switch {
	case errors.Is(err, domain.ErrBadParams), errors.Is(err, domain.ErrNotFound):
		msg := err.Error()
		if errors.As(err, &de) && de.Message != "" {
			msg = de.Message
		}
		return http.StatusOK, domain.Fail(msg)
	default:
		return http.StatusInternalServerError, domain.Fail(domain.MsgInternal)
	}
}

// WriteJSON пишет тело ответа; для HEAD — без тела
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(mw.HeaderRequestID, mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// WriteOK — 200 с телом, где уже встроен конверт
func WriteOK(w http.ResponseWriter, r *http.Request, body any) {
	WriteJSON(w, r, http.StatusOK, body)
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := MapDomainError(err)
	WriteJSON(w, r, status, env)
}

// IsJSON — тело запроса в JSON (иначе читаем как форму)
func IsJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "application/json")
}

// DecodeJSON читает JSON-тело; пустое тело — не ошибка.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.Validation(domain.MsgBadBody)
}

const maxFormMemory = 1 << 20

// ParseForm разбирает urlencoded и multipart/form-data (FormData из браузера).
func ParseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return domain.Validation(domain.MsgBadBody)
	}
	return nil
}
