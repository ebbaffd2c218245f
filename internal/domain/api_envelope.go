package domain

// Плоский конверт ответа: у каждого ответа есть success, при ошибке — message.
// Полезная нагрузка встраивается рядом (videos, video, likes, comments, creator).
type APIEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Ok() APIEnvelope {
	return APIEnvelope{Success: true}
}

func OkMessage(msg string) APIEnvelope {
	return APIEnvelope{Success: true, Message: msg}
}

func Fail(msg string) APIEnvelope {
	return APIEnvelope{Success: false, Message: msg}
}
