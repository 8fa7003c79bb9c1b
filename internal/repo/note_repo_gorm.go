package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notes-service/internal/domain"
)

type NoteRepo struct{ db *gorm.DB }

func NewNoteRepo(db *gorm.DB) *NoteRepo { return &NoteRepo{db: db} }

func (r *NoteRepo) Create(ctx context.Context, n *domain.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteRepo) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepo) GetOne(ctx context.Context, ownerID, noteID uint) (*domain.Note, error) {
	var n domain.Note
	err := r.db.WithContext(ctx).
		First(&n, "id = ? AND owner_id = ?", noteID, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepo) Update(ctx context.Context, ownerID, noteID uint, title, content string) (*domain.Note, error) {
	var n domain.Note
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Note{}).
			Where("id = ? AND owner_id = ?", noteID, ownerID).
			Updates(map[string]any{"title": title, "content": content})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNoteNotFound
		}
		return tx.First(&n, "id = ? AND owner_id = ?", noteID, ownerID).Error
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepo) Delete(ctx context.Context, ownerID, noteID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", noteID, ownerID).
		Delete(&domain.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
