package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

func TestTranscriptRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTranscriptRepository(gdb, time.Second)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transcripts`").WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	tr := &model.Transcript{UserID: 42, Name: "standup", Content: "hello"}
	require.NoError(t, repo.Create(context.Background(), tr))
	assert.Equal(t, uint(11), tr.ID)
}

func TestTranscriptRepository_Create_StorageError(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTranscriptRepository(gdb, time.Second)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transcripts`").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &model.Transcript{UserID: 1, Name: "n", Content: "c"})
	assert.ErrorIs(t, err, apperr.ErrStorage)
}

func TestTranscriptRepository_ListByUser_FiltersByOwner(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTranscriptRepository(gdb, time.Second)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "created_date"}).
		AddRow(3, "third", base.Add(2*time.Minute)).
		AddRow(2, "second", base.Add(time.Minute)).
		AddRow(1, "first", base)
	mock.ExpectQuery("SELECT `id`,`name`,`created_date` FROM `transcripts` WHERE user_id = \\? ORDER BY created_date DESC,id DESC").
		WithArgs(42).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, "first", got[2].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptRepository_ListByUser_Empty(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTranscriptRepository(gdb, time.Second)

	mock.ExpectQuery("FROM `transcripts`").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_date"}))

	got, err := repo.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTranscriptRepository_FindByID_NotOwned(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTranscriptRepository(gdb, time.Second)

	mock.ExpectQuery("FROM `transcripts` WHERE id = \\? AND user_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "content", "created_date"}))

	got, err := repo.FindByID(context.Background(), 7, 11)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
