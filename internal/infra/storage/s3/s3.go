package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PathStyle bool
	Key       string // ключ объекта со снимком документа
}

// Mirror хранит копию JSON-документа одним объектом в бакете.
type Mirror struct {
	cl     *minio.Client
	bucket string
	key    string
}

var _ domain.SnapshotMirror = (*Mirror)(nil)

func New(ctx context.Context, cfg Config) (*Mirror, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, errors.New("s3: bucket and key are required")
	}
	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}
	if cfg.PathStyle {
		opts.BucketLookup = minio.BucketLookupPath
	}
	cl, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, err
	}
	m := &Mirror{cl: cl, bucket: cfg.Bucket, key: cfg.Key}
	if err := m.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mirror) ensureBucket(ctx context.Context, region string) error {
	ok, err := m.cl.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("s3: bucket exists: %w", err)
	}
	if ok {
		return nil
	}
	if err := m.cl.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("s3: make bucket %s: %w", m.bucket, err)
	}
	return nil
}

// Put перезаписывает снимок целиком.
func (m *Mirror) Put(ctx context.Context, data []byte) error {
	_, err := m.cl.PutObject(ctx, m.bucket, m.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", m.key, err)
	}
	return nil
}

// Fetch читает снимок. found=false, если объекта ещё нет.
func (m *Mirror) Fetch(ctx context.Context) ([]byte, bool, error) {
	// HEAD отдельно: GetObject ленивый и про отсутствие ключа скажет только при чтении
	if _, err := m.cl.StatObject(ctx, m.bucket, m.key, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("s3: stat %s: %w", m.key, err)
	}

	obj, err := m.cl.GetObject(ctx, m.bucket, m.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, false, fmt.Errorf("s3: get %s: %w", m.key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("s3: read %s: %w", m.key, err)
	}
	return data, true, nil
}

func (m *Mirror) Ping(ctx context.Context) error {
	ok, err := m.cl.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("s3: bucket %s not found", m.bucket)
	}
	return nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
