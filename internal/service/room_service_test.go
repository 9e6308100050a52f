package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
	"vidchat/internal/provision"
)

func TestRoomService_CreateRoom(t *testing.T) {
	rooms := new(MockRoomEnsurer)
	opts := model.RoomOptions{Name: "standup", Type: "group"}
	want := provision.RoomResult{Created: true, Room: &model.Room{SID: "RM1", UniqueName: "standup"}}
	rooms.On("EnsureRoom", mock.Anything, opts).Return(want, nil)
	svc := NewRoomService(rooms, new(MockTokens))

	got, err := svc.CreateRoom(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoomService_JoinRoom(t *testing.T) {
	tokens := new(MockTokens)
	tokens.On("VideoToken", mock.AnythingOfType("string"), "standup").Return("jwt", nil)
	svc := NewRoomService(new(MockRoomEnsurer), tokens)

	first, err := svc.JoinRoom(context.Background(), " standup ")
	require.NoError(t, err)
	second, err := svc.JoinRoom(context.Background(), "standup")
	require.NoError(t, err)

	assert.Equal(t, "jwt", first.Token)
	assert.Equal(t, "standup", first.Room)
	_, err = uuid.Parse(first.Identity)
	assert.NoError(t, err)
	assert.NotEqual(t, first.Identity, second.Identity)
}

func TestRoomService_JoinRoomErrors(t *testing.T) {
	tokens := new(MockTokens)
	tokens.On("VideoToken", mock.Anything, "broken").Return("", errors.New("sign failed"))
	svc := NewRoomService(new(MockRoomEnsurer), tokens)

	_, err := svc.JoinRoom(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrMissingFields)

	_, err = svc.JoinRoom(context.Background(), "broken")
	assert.Error(t, err)
}

func TestConversationService_Open(t *testing.T) {
	conv := &model.Conversation{SID: "CH1", FriendlyName: "standup"}
	conversations := new(MockConversationEnsurer)
	conversations.On("EnsureConversation", mock.Anything, "standup").Return(conv, nil)
	conversations.On("EnsureConversation", mock.Anything, "down").Return(nil, apperr.ErrExternalService)
	tokens := new(MockTokens)
	tokens.On("ChatToken", "alice").Return("chat-jwt", nil)
	svc := NewConversationService(conversations, tokens)

	ticket, err := svc.Open(context.Background(), "standup", "alice")
	require.NoError(t, err)
	assert.Equal(t, conv, ticket.Conversation)
	assert.Equal(t, "chat-jwt", ticket.Token)

	_, err = svc.Open(context.Background(), "down", "alice")
	assert.ErrorIs(t, err, apperr.ErrExternalService)
	tokens.AssertNumberOfCalls(t, "ChatToken", 1)
}
