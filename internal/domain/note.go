package domain

import (
	"context"
	"time"
)

// Note belongs to exactly one user. Every id-scoped operation filters by
// (id, owner_id) in a single query so a foreign note is indistinguishable
// from a missing one.
type Note struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text"`
	OwnerID   uint      `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Note) TableName() string { return "notes" }

type NoteRepository interface {
	Create(ctx context.Context, n *Note) error
	ListByOwner(ctx context.Context, ownerID uint) ([]Note, error)
	GetOne(ctx context.Context, ownerID, noteID uint) (*Note, error)
	// Update replaces title and content only; id, owner and created timestamp
	// stay untouched. ErrNoteNotFound when the row is missing or foreign.
	Update(ctx context.Context, ownerID, noteID uint, title, content string) (*Note, error)
	// Delete is not idempotent: deleting an already-deleted or foreign note
	// returns ErrNoteNotFound.
	Delete(ctx context.Context, ownerID, noteID uint) error
}
