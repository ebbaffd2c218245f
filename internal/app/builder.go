package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/NAMITJAIN06/bite-learning/internal/config"
	"github.com/NAMITJAIN06/bite-learning/internal/domain"
	"github.com/NAMITJAIN06/bite-learning/internal/infra/storage/jsonfile"
	s3storage "github.com/NAMITJAIN06/bite-learning/internal/infra/storage/s3"
	"github.com/NAMITJAIN06/bite-learning/internal/service"
	"github.com/NAMITJAIN06/bite-learning/internal/transport/web"
	"gopkg.in/natefinch/lumberjack.v2"
)

type App struct {
	config  *config.Config
	server  *web.Server
	log     *log.Logger
	store   *jsonfile.Store
	logFile io.Closer
}

func Build(ctx context.Context) (*App, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}

	var out io.Writer = os.Stdout
	var logFile io.Closer
	if cfg.LogFile != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		}
		out, logFile = io.MultiWriter(os.Stdout, lj), lj
	}

	base := log.New(out, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	storeLog := log.New(base.Writer(), base.Prefix()+"[store] ", base.Flags())
	s3Log := log.New(base.Writer(), base.Prefix()+"[s3] ", base.Flags())
	svcLog := log.New(base.Writer(), base.Prefix()+"[service] ", base.Flags())

	base.Printf("\n  configuration: %s-------------------", cfg)

	// nil-интерфейс, а не nil-указатель: хранилище и health проверяют mirror != nil
	var mirror domain.SnapshotMirror
	if cfg.MirrorEnabled() {
		base.Println("init S3 mirror")
		m, err := s3storage.New(ctx, s3storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			PathStyle: cfg.S3PathStyle,
			Key:       cfg.S3SnapshotKey,
		})
		if err != nil {
			// зеркало необязательно: работаем только с локальным файлом
			s3Log.Printf("mirror disabled: %v", err)
		} else {
			mirror = m
			s3Log.Printf("mirror is initialized: bucket=%s key=%s", cfg.S3Bucket, cfg.S3SnapshotKey)
		}
	}

	base.Println("init store")
	store := jsonfile.Open(ctx, storeLog, cfg.DataFile, mirror)
	base.Printf("store is initialized: source=%s path=%s", store.Source(), store.Path())

	probes := web.Probes{Store: store}
	if mirror != nil {
		probes.Mirror = mirror
	}
	svc := web.Services{
		Videos:   service.NewVideos(store, svcLog),
		Creators: service.NewCreators(store),
	}

	base.Println("init Server")
	server := web.New(serverLog, cfg, svc, probes)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config:  cfg,
		server:  server,
		log:     base,
		store:   store,
		logFile: logFile}, nil
}

// Run работает до отмены ctx или падения сервера, затем останавливает
// сервер и сохраняет документ последний раз.
func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")

	errCh := make(chan error, 1)
	go func() { errCh <- a.server.Run() }()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		if runErr != nil {
			a.log.Printf("server error: %v", runErr)
		}
	}
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)

	if err := a.store.Flush(stopCtx); err != nil {
		a.log.Printf("final flush failed: %v", err)
	} else {
		a.log.Println("data flushed")
	}
	if err := a.store.Close(stopCtx); err != nil {
		a.log.Printf("mirror upload interrupted: %v", err)
	}

	if a.logFile != nil {
		_ = a.logFile.Close()
	}
	return runErr
}
