package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sarthi-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRecord merepresentasikan tabel 'auth_sessions'.
// Hanya ada satu baris, dengan StorageKey sebagai primary key.
type SessionRecord struct {
	Key       string         `gorm:"column:session_key;primaryKey;size:64"`
	Role      string         `gorm:"size:16;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (SessionRecord) TableName() string {
	return "auth_sessions"
}

// GormRepository menyimpan session di MySQL/Postgres lewat gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository sekalian AutoMigrate tabelnya
func NewGormRepository(db *gorm.DB) (*GormRepository, error) {
	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, fmt.Errorf("migrate auth_sessions: %w", err)
	}
	return &GormRepository{db: db}, nil
}

func (r *GormRepository) Load(ctx context.Context) (*models.Session, error) {
	var rec SessionRecord
	err := r.db.WithContext(ctx).Where("session_key = ?", StorageKey).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decode(rec.Payload)
}

func (r *GormRepository) Save(ctx context.Context, s models.Session) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	rec := SessionRecord{Key: StorageKey, Role: string(s.Role), Payload: datatypes.JSON(blob)}
	// Upsert: session lama langsung ditimpa
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *GormRepository) Clear(ctx context.Context) error {
	err := r.db.WithContext(ctx).Delete(&SessionRecord{Key: StorageKey}).Error
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
