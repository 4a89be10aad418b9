// Package repository holds shapes shared by all persisted entities.
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the field set every entity embeds: uuid key, timestamps and the
// soft-delete flag. Rows are never physically removed; IsActive=false makes
// them invisible to all default queries.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool `gorm:"not null;default:true;index"`
}

// Active is a gorm scope restricting queries to non-soft-deleted rows.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
