package persistence

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"lukechampine.com/blake3"

	"github.com/andrescamacho/spacerush-go/internal/domain/save"
)

const (
	// DefaultSlot is the slot used when none is configured
	DefaultSlot = "default"

	// DefaultHistoryLimit is how many history rows a slot keeps
	DefaultHistoryLimit = 200
)

// ErrChecksumMismatch is returned when a stored payload no longer matches its checksum
var ErrChecksumMismatch = errors.New("save payload checksum mismatch")

// SaveRecord describes one entry of a slot's save history
type SaveRecord struct {
	SaveID    string
	Credits   float64
	CivLevel  int
	SizeBytes int
	Checksum  string
	SavedAt   time.Time
}

// GormSaveStore implements save.Store on top of a database slot table
type GormSaveStore struct {
	db           *gorm.DB
	slot         string
	codec        *Codec
	historyLimit int
}

// NewGormSaveStore creates a new GORM save store for one slot
func NewGormSaveStore(db *gorm.DB, slot string, codec *Codec) *GormSaveStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &GormSaveStore{db: db, slot: slot, codec: codec, historyLimit: DefaultHistoryLimit}
}

// WithHistoryLimit sets how many history rows the slot keeps. Older rows are
// pruned on every save; n <= 0 keeps the default.
func (s *GormSaveStore) WithHistoryLimit(n int) *GormSaveStore {
	if n > 0 {
		s.historyLimit = n
	}
	return s
}

// Save upserts the slot row, appends a history record and prunes the history
// beyond the limit in one transaction
func (s *GormSaveStore) Save(ctx context.Context, doc *save.Document) error {
	payload, err := s.codec.Encode(doc)
	if err != nil {
		return err
	}
	checksum := checksumOf(payload)

	slot := SaveSlotModel{
		Slot:        s.slot,
		SaveID:      doc.SaveID,
		Version:     doc.Version,
		Compression: string(s.codec.Compression()),
		Payload:     payload,
		Checksum:    checksum,
		SavedAt:     doc.Timestamp,
	}
	history := SaveHistoryModel{
		Slot:      s.slot,
		SaveID:    doc.SaveID,
		Credits:   doc.Credits,
		CivLevel:  doc.Civilization.Level,
		SizeBytes: len(payload),
		Checksum:  checksum,
		SavedAt:   doc.Timestamp,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"save_id", "version", "compression", "payload", "checksum", "saved_at", "updated_at"}),
		}).Create(&slot)
		if upsert.Error != nil {
			return upsert.Error
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		return s.pruneHistory(tx)
	})
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", s.slot, err)
	}
	return nil
}

// Load reads the slot row, verifies its checksum and decodes it
func (s *GormSaveStore) Load(ctx context.Context) (*save.Document, error) {
	var model SaveSlotModel
	result := s.db.WithContext(ctx).Where("slot = ?", s.slot).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, save.ErrNoSave
		}
		return nil, fmt.Errorf("failed to load slot %s: %w", s.slot, result.Error)
	}

	if checksumOf(model.Payload) != model.Checksum {
		return nil, fmt.Errorf("slot %s: %w", s.slot, ErrChecksumMismatch)
	}
	return s.codec.Decode(model.Payload)
}

// History lists the most recent saves of the slot, newest first
func (s *GormSaveStore) History(ctx context.Context, limit int) ([]SaveRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []SaveHistoryModel
	result := s.db.WithContext(ctx).
		Where("slot = ?", s.slot).
		Order("saved_at DESC, id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list save history: %w", result.Error)
	}

	records := make([]SaveRecord, 0, len(models))
	for _, m := range models {
		records = append(records, SaveRecord{
			SaveID:    m.SaveID,
			Credits:   m.Credits,
			CivLevel:  m.CivLevel,
			SizeBytes: m.SizeBytes,
			Checksum:  m.Checksum,
			SavedAt:   m.SavedAt.UTC(),
		})
	}
	return records, nil
}

func (s *GormSaveStore) pruneHistory(tx *gorm.DB) error {
	keep := tx.Model(&SaveHistoryModel{}).
		Select("id").
		Where("slot = ?", s.slot).
		Order("id DESC").
		Limit(s.historyLimit)
	return tx.Where("slot = ? AND id NOT IN (?)", s.slot, keep).Delete(&SaveHistoryModel{}).Error
}

func checksumOf(payload []byte) string {
	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
