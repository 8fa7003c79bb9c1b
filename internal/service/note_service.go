package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notes-service/internal/core/cache"
	"notes-service/internal/domain"
)

const defaultNoteTTL = 5 * time.Minute

// NoteService runs owner-scoped CRUD with an optional read-through cache.
// Reads are cached per owner; every mutation evicts that owner's prefix so a
// stale entry can never outlive a change by more than the eviction call.
type NoteService struct {
	notes domain.NoteRepository
	cache *cache.Cache
	log   *zap.Logger
}

func NewNoteService(notes domain.NoteRepository, c *cache.Cache, log *zap.Logger) *NoteService {
	return &NoteService{notes: notes, cache: c, log: log}
}

func notesPrefix(ownerID uint) string { return fmt.Sprintf("notes:%d", ownerID) }

func (s *NoteService) ttl() time.Duration {
	if s.cache.Enabled() && s.cache.TTL > 0 {
		return s.cache.TTL
	}
	return defaultNoteTTL
}

func (s *NoteService) Create(ctx context.Context, ownerID uint, title, content string) (*domain.Note, error) {
	n := &domain.Note{Title: title, Content: content, OwnerID: ownerID}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, err
	}
	s.cache.InvalidateByPrefix(ctx, notesPrefix(ownerID))
	return n, nil
}

func (s *NoteService) List(ctx context.Context, ownerID uint) ([]domain.Note, error) {
	key := cache.Key(notesPrefix(ownerID), "list")
	return cache.GetOrLoadJSON(s.cache, ctx, key, s.ttl(), func(ctx context.Context) ([]domain.Note, error) {
		return s.notes.ListByOwner(ctx, ownerID)
	})
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID uint) (*domain.Note, error) {
	key := cache.Key(notesPrefix(ownerID), "get", noteID)
	return cache.GetOrLoadJSON(s.cache, ctx, key, s.ttl(), func(ctx context.Context) (*domain.Note, error) {
		return s.notes.GetOne(ctx, ownerID, noteID)
	})
}

func (s *NoteService) Update(ctx context.Context, ownerID, noteID uint, title, content string) (*domain.Note, error) {
	n, err := s.notes.Update(ctx, ownerID, noteID, title, content)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateByPrefix(ctx, notesPrefix(ownerID))
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID uint) error {
	if err := s.notes.Delete(ctx, ownerID, noteID); err != nil {
		return err
	}
	s.cache.InvalidateByPrefix(ctx, notesPrefix(ownerID))
	return nil
}
