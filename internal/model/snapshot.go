package model

import (
	"time"

	"github.com/google/uuid"
)

// RawFile is one named text blob from an uploaded export package.
type RawFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Snapshot is the last successfully loaded file set of an account, plus the
// time it was loaded. One snapshot per account; Files holds the JSON-encoded
// []RawFile.
type Snapshot struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Files     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Account Account `gorm:"foreignKey:AccountID"`
}
