package domain

import "errors"

// Бизнес-ошибки. Наружу ValidationError и NotFound уходят одинаково:
// HTTP 200 и {success:false, message}.
var (
	ErrBadParams  = errors.New("bad_params") // ValidationError
	ErrNotFound   = errors.New("not_found")  // NotFound
	ErrUnexpected = errors.New("unexpected") // 500
)

// Error несёт вид ошибки (один из sentinel выше) и текст для клиента.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" && e.Kind != nil {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) error { return &Error{Kind: ErrBadParams, Message: msg} }
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Сообщения, которые видит клиент
const (
	MsgVideoNotFound    = "Video not found"
	MsgCreatorNotFound  = "Creator not found"
	MsgVideoURLRequired = "Video URL is required"
	MsgCommentEmpty     = "Comment cannot be empty"
	MsgURLRequired      = "URL is required"
	MsgBadBody          = "Invalid request body"
	MsgInternal         = "Internal server error"
)
