package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
	"vidchat/internal/provision"
)

// RoomEnsurer provisions a video room by name.
type RoomEnsurer interface {
	EnsureRoom(ctx context.Context, opts model.RoomOptions) (provision.RoomResult, error)
}

// VideoTokenIssuer signs access tokens granting entry to a video room.
type VideoTokenIssuer interface {
	VideoToken(identity, room string) (string, error)
}

// JoinTicket is what a participant needs to connect to a room.
type JoinTicket struct {
	Token    string `json:"token"`
	Identity string `json:"identity"`
	Room     string `json:"room"`
}

// RoomService creates and joins video rooms.
type RoomService interface {
	CreateRoom(ctx context.Context, opts model.RoomOptions) (provision.RoomResult, error)
	JoinRoom(ctx context.Context, roomName string) (*JoinTicket, error)
}

type roomService struct {
	rooms  RoomEnsurer
	tokens VideoTokenIssuer
}

// NewRoomService builds a RoomService.
func NewRoomService(rooms RoomEnsurer, tokens VideoTokenIssuer) RoomService {
	return &roomService{rooms: rooms, tokens: tokens}
}

func (s *roomService) CreateRoom(ctx context.Context, opts model.RoomOptions) (provision.RoomResult, error) {
	return s.rooms.EnsureRoom(ctx, opts)
}

// JoinRoom issues a video token under a fresh random identity.
func (s *roomService) JoinRoom(_ context.Context, roomName string) (*JoinTicket, error) {
	roomName = strings.TrimSpace(roomName)
	if roomName == "" {
		return nil, apperr.ErrMissingFields
	}
	identity := uuid.NewString()
	token, err := s.tokens.VideoToken(identity, roomName)
	if err != nil {
		return nil, fmt.Errorf("issue video token: %w", err)
	}
	return &JoinTicket{Token: token, Identity: identity, Room: roomName}, nil
}
