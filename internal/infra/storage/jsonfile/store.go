package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NAMITJAIN06/bite-learning/internal/domain"
)

// ---- Хранилище: один JSON-документ на диске + рабочая копия в памяти ----

// Source — откуда взято начальное состояние.
type Source string

const (
	SourceFile   Source = "file"
	SourceMirror Source = "mirror"
	SourceSeed   Source = "seed"
)

const (
	mirrorTimeout     = 10 * time.Second // чтение снимка при старте
	mirrorPushTimeout = 5 * time.Second
)

type Store struct {
	mu     sync.RWMutex
	lib    domain.Library
	path   string
	logger *log.Logger
	mirror domain.SnapshotMirror // может быть nil
	source Source

	// Выгрузка в зеркало идёт в фоне и вне s.mu: в очереди только последний снимок.
	pending    chan []byte
	stop       chan struct{}
	stopOnce   sync.Once
	pushCtx    context.Context
	cancelPush context.CancelFunc
	wg         sync.WaitGroup
}

var _ domain.LibraryStore = (*Store)(nil)

// Open загружает документ: локальный файл → копия в зеркале (если задано) → сид-данные.
// Битый файл трактуется как отсутствующий.
func Open(ctx context.Context, logger *log.Logger, path string, mirror domain.SnapshotMirror) *Store {
	s := &Store{path: path, logger: logger, mirror: mirror}
	if mirror != nil {
		s.pending = make(chan []byte, 1)
		s.stop = make(chan struct{})
		s.pushCtx, s.cancelPush = context.WithCancel(context.WithoutCancel(ctx))
		s.wg.Add(1)
		go s.mirrorLoop()
	}

	lib, err := Load(path)
	switch {
	case err == nil:
		s.lib, s.source = lib, SourceFile
		logger.Printf("loaded data from %s: videos=%d creators=%d", path, len(lib.Videos), len(lib.Creators))
		return s
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("data file %s not found", path)
	default:
		logger.Printf("data file %s unreadable: %v", path, err)
	}

	if mirror != nil {
		if lib, ok := s.fromMirror(ctx); ok {
			s.lib, s.source = lib, SourceMirror
			logger.Printf("restored data from mirror: videos=%d creators=%d", len(lib.Videos), len(lib.Creators))
			return s
		}
	}

	s.lib, s.source = Seed(time.Now().UTC()), SourceSeed
	logger.Printf("using default seed data: videos=%d creators=%d", len(s.lib.Videos), len(s.lib.Creators))
	return s
}

func (s *Store) fromMirror(ctx context.Context) (domain.Library, bool) {
	ctx, cancel := context.WithTimeout(ctx, mirrorTimeout)
	defer cancel()

	data, found, err := s.mirror.Fetch(ctx)
	if err != nil {
		s.logger.Printf("mirror fetch failed: %v", err)
		return domain.Library{}, false
	}
	if !found {
		s.logger.Println("mirror has no snapshot")
		return domain.Library{}, false
	}
	lib, err := Decode(data)
	if err != nil {
		s.logger.Printf("mirror snapshot unreadable: %v", err)
		return domain.Library{}, false
	}
	return lib, true
}

func (s *Store) Source() Source { return s.source }
func (s *Store) Path() string { return s.path }

// View выполняет fn под блокировкой чтения. Ссылки на данные нельзя
// удерживать после возврата из fn.
func (s *Store) View(fn func(lib *domain.Library)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.lib)
}

// Update выполняет fn под эксклюзивной блокировкой и, если fn не вернула ошибку,
// сразу сохраняет весь документ на диск. fn не должна ничего менять, если возвращает ошибку.
// Зеркало обновляется в фоне и Update не ждёт.
//
// Ошибка записи только логируется: изменение в памяти не откатывается,
// поэтому память и диск могут разойтись до следующей удачной записи.
func (s *Store) Update(_ context.Context, fn func(lib *domain.Library) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.lib); err != nil {
		return err
	}
	s.flushLocked()
	return nil
}

// Flush сохраняет текущее состояние (например, при остановке).
// Снимок для зеркала ставится в очередь; дождаться выгрузки можно через Close.
func (s *Store) Flush(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := Encode(s.lib)
	if err != nil {
		return err
	}
	if err := writeFile(s.path, data); err != nil {
		return err
	}
	s.enqueueMirror(data)
	return nil
}

func (s *Store) flushLocked() {
	start := time.Now()
	data, err := Encode(s.lib)
	if err != nil {
		s.logger.Printf("save: encode error: %v", err)
		return
	}
	if err := writeFile(s.path, data); err != nil {
		s.logger.Printf("save: write %s failed after %s: %v", s.path, time.Since(start), err)
		return
	}
	s.logger.Printf("save ok in %s bytes=%d", time.Since(start), len(data))
	s.enqueueMirror(data)
}

// enqueueMirror не блокируется: устаревший снимок в очереди заменяется новым.
// Вызывается под s.mu, поэтому порядок снимков совпадает с порядком записей.
func (s *Store) enqueueMirror(data []byte) {
	if s.mirror == nil {
		return
	}
	for {
		select {
		case s.pending <- data:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

func (s *Store) mirrorLoop() {
	defer s.wg.Done()
	for {
		select {
		case data := <-s.pending:
			s.pushMirror(data)
		case <-s.stop:
			// последний снимок, поставленный до Close
			select {
			case data := <-s.pending:
				s.pushMirror(data)
			default:
			}
			return
		}
	}
}

func (s *Store) pushMirror(data []byte) {
	ctx, cancel := context.WithTimeout(s.pushCtx, mirrorPushTimeout)
	defer cancel()
	start := time.Now()
	if err := s.mirror.Put(ctx, data); err != nil {
		s.logger.Printf("mirror put failed after %s: %v", time.Since(start), err)
		return
	}
	s.logger.Printf("mirror put ok in %s bytes=%d", time.Since(start), len(data))
}

// Close дожидается выгрузки последнего снимка в зеркало. Если ctx истёк раньше,
// текущая выгрузка прерывается.
func (s *Store) Close(ctx context.Context) error {
	if s.mirror == nil {
		return nil
	}
	s.stopOnce.Do(func() { close(s.stop) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancelPush()
		return nil
	case <-ctx.Done():
		s.cancelPush()
		<-done
		return ctx.Err()
	}
}

// Ping проверяет, что каталог с файлом данных доступен.
func (s *Store) Ping(context.Context) error {
	dir := filepath.Dir(s.path)
	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", dir)
	}
	return nil
}

// ---- Чтение/запись документа ----

// Load читает документ с диска и нормализует отсутствующие коллекции.
func Load(path string) (domain.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Library{}, err
	}
	return Decode(data)
}

// Save перезаписывает документ целиком.
func Save(path string, lib domain.Library) error {
	data, err := Encode(lib)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func Decode(data []byte) (domain.Library, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Library{}, fmt.Errorf("decode document: %w", err)
	}
	if raw == nil {
		return domain.Library{}, errors.New("decode document: not an object")
	}
	var lib domain.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return domain.Library{}, fmt.Errorf("decode document: %w", err)
	}
	lib.Normalize()
	return lib, nil
}

func Encode(lib domain.Library) ([]byte, error) {
	lib.Normalize()
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

// writeFile пишет во временный файл рядом и переименовывает поверх старого.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
