package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sarthi-backend/internal/models"
)

// StorageKey adalah kunci tetap tempat session disimpan
const StorageKey = "mediguard_auth_session"

// Repository menyimpan tepat satu session.
// Load mengembalikan nil, nil kalau belum ada yang tersimpan.
type Repository interface {
	Load(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}

// MemoryRepository dipakai untuk test dan SESSION_STORE=memory
type MemoryRepository struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.blob == nil {
		return nil, nil
	}
	return decode(r.blob)
}

func (r *MemoryRepository) Save(ctx context.Context, s models.Session) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	r.mu.Lock()
	r.blob = blob
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.blob = nil
	r.mu.Unlock()
	return nil
}

// FileRepository menyimpan session sebagai satu file JSON,
// padanan localStorage di aplikasi mobile
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{path: filepath.Join(dir, StorageKey+".json")}
}

func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	return decode(blob)
}

func (r *FileRepository) Save(ctx context.Context, s models.Session) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Tulis ke file sementara dulu biar file lama tidak rusak setengah jalan
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (r *FileRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func decode(blob []byte) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal(blob, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.Patient != nil {
		s.Patient.Normalize()
	}
	return &s, nil
}
