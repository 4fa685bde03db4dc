package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	model "github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/pkg/metrics"
)

// Default file store configuration constants.
const (
	defaultFileMode fs.FileMode = 0o644
	defaultDirMode  fs.FileMode = 0o755
)

// FileStore persists the document as a single JSON file. Reads and writes
// cover the whole document; concurrent writers from other processes are
// last-writer-wins, which is acceptable at this scale.
type FileStore struct {
	path     string
	fileMode fs.FileMode
	pretty   bool
	mu       sync.RWMutex
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:     path,
		fileMode: defaultFileMode,
		pretty:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and validates the full document. A missing file yields an
// empty document so first run needs no setup step.
func (s *FileStore) Load(_ context.Context) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := time.Now()
	defer func() {
		metrics.RecordStoreLoad(float64(time.Since(start).Milliseconds()))
	}()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, s.path, err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if doc == nil {
		doc = model.Document{}
	}
	return doc, nil
}

// Save writes the full document atomically: marshal, write a temp file in
// the same directory, rename over the target.
func (s *FileStore) Save(_ context.Context, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.RecordStoreSave(float64(time.Since(start).Milliseconds()))
	}()

	var (
		data []byte
		err  error
	)
	if s.pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrStorageUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", ErrStorageUnavailable, dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: temp file: %v", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Chmod(tmpName, s.fileMode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod %s: %v", ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename to %s: %v", ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// Info describes the data file for the stats view.
func (s *FileStore) Info(_ context.Context) Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := Info{Path: s.path}
	if st, err := os.Stat(s.path); err == nil {
		info.Exists = true
		info.Bytes = st.Size()
	}
	return info
}
