package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

// memTranscripts is an in-memory TranscriptRepository.
type memTranscripts struct {
	mu   sync.Mutex
	rows []model.Transcript
}

func (m *memTranscripts) Create(_ context.Context, t *model.Transcript) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = uint(len(m.rows) + 1)
	t.CreatedAt = time.Unix(int64(t.ID), 0)
	m.rows = append(m.rows, *t)
	return nil
}

func (m *memTranscripts) ListByUser(_ context.Context, userID uint) ([]model.TranscriptSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.TranscriptSummary{}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if r := m.rows[i]; r.UserID == userID {
			out = append(out, model.TranscriptSummary{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt})
		}
	}
	return out, nil
}

func (m *memTranscripts) FindByID(_ context.Context, userID, id uint) (*model.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id && r.UserID == userID {
			return &r, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func TestTranscriptService_ListOnlyOwn(t *testing.T) {
	svc := NewTranscriptService(&memTranscripts{})
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, 42, name, "content "+name)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 7, "other", "not yours")
	require.NoError(t, err)

	list, err := svc.ListByUser(ctx, 42)
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].Name, list[1].Name, list[2].Name})

	empty, err := svc.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTranscriptService_Get(t *testing.T) {
	svc := NewTranscriptService(&memTranscripts{})
	ctx := context.Background()
	id, err := svc.Create(ctx, 42, "standup", "hello")
	require.NoError(t, err)

	got, err := svc.Get(ctx, 42, id)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)

	_, err = svc.Get(ctx, 7, id)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTranscriptService_CreateValidation(t *testing.T) {
	repo := new(MockTranscriptRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Transcript) bool {
		return len([]rune(tr.Name)) == maxTranscriptName
	})).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *model.Transcript) bool {
		return tr.Name == "broken"
	})).Return(apperr.ErrStorage)
	svc := NewTranscriptService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 42, "", "x")
	assert.ErrorIs(t, err, apperr.ErrMissingFields)
	_, err = svc.Create(ctx, 0, "n", "x")
	assert.ErrorIs(t, err, apperr.ErrMissingFields)

	_, err = svc.Create(ctx, 42, strings.Repeat("é", 300), "x")
	assert.NoError(t, err)

	_, err = svc.Create(ctx, 42, "broken", "x")
	assert.ErrorIs(t, err, apperr.ErrStorage)
}
