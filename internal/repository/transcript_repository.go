package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vidchat/internal/model"
)

// TranscriptRepository persists transcripts owned by users.
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *model.Transcript) error
	ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error)
	FindByID(ctx context.Context, userID, id uint) (*model.Transcript, error)
}

type transcriptRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTranscriptRepository creates a new transcript repository.
func NewTranscriptRepository(db *gorm.DB, timeout time.Duration) TranscriptRepository {
	return &transcriptRepository{db: db, timeout: timeout}
}

func (r *transcriptRepository) Create(ctx context.Context, transcript *model.Transcript) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return classify(ctx, r.db.WithContext(ctx).Create(transcript).Error)
}

// ListByUser returns the user's transcripts, newest first.
func (r *transcriptRepository) ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	summaries := make([]model.TranscriptSummary, 0)
	err := r.db.WithContext(ctx).Model(&model.Transcript{}).
		Select("id", "name", "created_date").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Order("id DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, classify(ctx, err)
	}
	return summaries, nil
}

// FindByID returns a transcript only when userID owns it.
func (r *transcriptRepository) FindByID(ctx context.Context, userID, id uint) (*model.Transcript, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var transcript model.Transcript
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transcript).Error
	if err != nil {
		return nil, classify(ctx, err)
	}
	return &transcript, nil
}
