package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/haoyu/ai-notebook/internal/domain"
	"github.com/haoyu/ai-notebook/internal/repository"
	"gorm.io/gorm"
)

type NoteService struct {
	noteRepo repository.NoteRepository
}

func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{noteRepo: noteRepo}
}

func (s *NoteService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	return s.noteRepo.ListByUserID(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return note, nil
}

type CreateNoteInput struct {
	Title   string
	Content string
}

func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, input CreateNoteInput) (*domain.Note, error) {
	note := &domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

type UpdateNoteInput struct {
	Title   *string
	Content *string
}

// Update applies a partial update: only fields present in the input change.
func (s *NoteService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateNoteInput) (*domain.Note, error) {
	note, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	return s.noteRepo.Delete(ctx, id, userID)
}
