package router_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"vidchat/internal/model"
	"vidchat/internal/provision"
	"vidchat/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	args := m.Called(ctx, userID, current, next)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) CreateRoom(ctx context.Context, opts model.RoomOptions) (provision.RoomResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(provision.RoomResult), args.Error(1)
}

func (m *MockRoomService) JoinRoom(ctx context.Context, roomName string) (*service.JoinTicket, error) {
	args := m.Called(ctx, roomName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JoinTicket), args.Error(1)
}

type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) Open(ctx context.Context, name, identity string) (*service.ConversationTicket, error) {
	args := m.Called(ctx, name, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConversationTicket), args.Error(1)
}

type MockTextService struct {
	mock.Mock
}

func (m *MockTextService) Convert(ctx context.Context, text, kind string) (string, error) {
	args := m.Called(ctx, text, kind)
	return args.String(0), args.Error(1)
}

type MockTranscriptService struct {
	mock.Mock
}

func (m *MockTranscriptService) Create(ctx context.Context, userID uint, name, content string) (uint, error) {
	args := m.Called(ctx, userID, name, content)
	return uint(args.Int(0)), args.Error(1)
}

func (m *MockTranscriptService) ListByUser(ctx context.Context, userID uint) ([]model.TranscriptSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranscriptSummary), args.Error(1)
}

func (m *MockTranscriptService) Get(ctx context.Context, userID, id uint) (*model.Transcript, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcript), args.Error(1)
}
