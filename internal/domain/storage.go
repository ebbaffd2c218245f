package domain

import "context"

// Внешняя копия сохранённого документа (S3/MinIO).
type SnapshotMirror interface {
	// Put кладёт документ целиком (перезаписью)
	Put(ctx context.Context, data []byte) error
	// Fetch возвращает последнюю копию; found=false, если копии нет
	Fetch(ctx context.Context) (data []byte, found bool, err error)
	Ping(ctx context.Context) error
}
