package persistence

import (
	"time"
)

// SaveSlotModel represents the save_slots table. One row per slot holds the
// latest document.
type SaveSlotModel struct {
	Slot        string    `gorm:"column:slot;primaryKey"`
	SaveID      string    `gorm:"column:save_id;not null"`
	Version     int       `gorm:"column:version;not null"`
	Compression string    `gorm:"column:compression;not null"`
	Payload     []byte    `gorm:"column:payload;not null"`
	Checksum    string    `gorm:"column:checksum;not null"` // hex blake3 of payload
	SavedAt     time.Time `gorm:"column:saved_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SaveSlotModel) TableName() string {
	return "save_slots"
}

// SaveHistoryModel represents the save_history table, the most recent saves
// written to a slot
type SaveHistoryModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Slot      string    `gorm:"column:slot;not null;index"`
	SaveID    string    `gorm:"column:save_id;not null"`
	Credits   float64   `gorm:"column:credits"`
	CivLevel  int       `gorm:"column:civ_level"`
	SizeBytes int       `gorm:"column:size_bytes"`
	Checksum  string    `gorm:"column:checksum;not null"`
	SavedAt   time.Time `gorm:"column:saved_at;not null;index"`
}

func (SaveHistoryModel) TableName() string {
	return "save_history"
}
