package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store persists small integer values by key
type Store interface {
	Load(key string) (int, bool, error)
	Save(key string, value int) error
}

// FileStore keeps all values in one JSON object on disk
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Load(key string) (int, bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		return 0, false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (fs *FileStore) Save(key string, value int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	values, err := fs.read()
	if err != nil {
		// Unreadable file gets replaced rather than blocking the write.
		values = make(map[string]int)
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(fs.path))
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, fs.path), "replace %s", fs.path)
}

func (fs *FileStore) read() (map[string]int, error) {
	values := make(map[string]int)
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fs.path)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "decode %s", fs.path)
	}
	return values, nil
}

// MemoryStore is a process-local Store
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (ms *MemoryStore) Load(key string) (int, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.values[key]
	return v, ok, nil
}

func (ms *MemoryStore) Save(key string, value int) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.values[key] = value
	return nil
}
