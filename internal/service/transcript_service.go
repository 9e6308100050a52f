package service

import (
	"context"
	"strings"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
	"vidchat/internal/repository"
)

const maxTranscriptName = 255

// TranscriptService stores and reads a user's transcripts.
type TranscriptService interface {
	Create(ctx context.Context, userID uint, name, content string) (uint, error)
	ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error)
	Get(ctx context.Context, userID, id uint) (*model.Transcript, error)
}

type transcriptService struct {
	repo repository.TranscriptRepository
}

// NewTranscriptService builds a TranscriptService.
func NewTranscriptService(repo repository.TranscriptRepository) TranscriptService {
	return &transcriptService{repo: repo}
}

func (s *transcriptService) Create(ctx context.Context, userID uint, name, content string) (uint, error) {
	name = strings.TrimSpace(name)
	if userID == 0 || name == "" || content == "" {
		return 0, apperr.ErrMissingFields
	}
	if r := []rune(name); len(r) > maxTranscriptName {
		name = string(r[:maxTranscriptName])
	}
	t := &model.Transcript{UserID: userID, Name: name, Content: content}
	if err := s.repo.Create(ctx, t); err != nil {
		return 0, err
	}
	return t.ID, nil
}

func (s *transcriptService) ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *transcriptService) Get(ctx context.Context, userID, id uint) (*model.Transcript, error) {
	if id == 0 {
		return nil, apperr.ErrMissingFields
	}
	return s.repo.FindByID(ctx, userID, id)
}
