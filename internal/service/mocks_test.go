package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vidchat/internal/model"
	"vidchat/internal/provision"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uint, password, salt string) error {
	args := m.Called(ctx, id, password, salt)
	return args.Error(0)
}

// MockTranscriptRepository is a mock implementation of TranscriptRepository.
type MockTranscriptRepository struct {
	mock.Mock
}

func (m *MockTranscriptRepository) Create(ctx context.Context, t *model.Transcript) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranscriptRepository) ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranscriptSummary), args.Error(1)
}

func (m *MockTranscriptRepository) FindByID(ctx context.Context, userID, id uint) (*model.Transcript, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcript), args.Error(1)
}

// MockRoomEnsurer is a mock implementation of RoomEnsurer.
type MockRoomEnsurer struct {
	mock.Mock
}

func (m *MockRoomEnsurer) EnsureRoom(ctx context.Context, opts model.RoomOptions) (provision.RoomResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(provision.RoomResult), args.Error(1)
}

// MockConversationEnsurer is a mock implementation of ConversationEnsurer.
type MockConversationEnsurer struct {
	mock.Mock
}

func (m *MockConversationEnsurer) EnsureConversation(ctx context.Context, name string) (*model.Conversation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

// MockTokens is a mock implementation of VideoTokenIssuer and ChatTokenIssuer.
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) VideoToken(identity, room string) (string, error) {
	args := m.Called(identity, room)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) ChatToken(identity string) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

// MockCompleter is a mock implementation of Completer.
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
