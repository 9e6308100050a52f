package service

import (
	"context"
	"fmt"

	"vidchat/internal/model"
)

// ConversationEnsurer provisions a chat conversation by friendly name.
type ConversationEnsurer interface {
	EnsureConversation(ctx context.Context, name string) (*model.Conversation, error)
}

// ChatTokenIssuer signs access tokens for the chat service.
type ChatTokenIssuer interface {
	ChatToken(identity string) (string, error)
}

// ConversationTicket pairs a conversation with a chat token for the caller.
type ConversationTicket struct {
	Conversation *model.Conversation `json:"conversation"`
	Token        string              `json:"token"`
}

// ConversationService opens chat conversations.
type ConversationService interface {
	Open(ctx context.Context, name, identity string) (*ConversationTicket, error)
}

type conversationService struct {
	conversations ConversationEnsurer
	tokens        ChatTokenIssuer
}

// NewConversationService builds a ConversationService.
func NewConversationService(conversations ConversationEnsurer, tokens ChatTokenIssuer) ConversationService {
	return &conversationService{conversations: conversations, tokens: tokens}
}

// Open finds or creates the conversation and signs a chat token for identity.
func (s *conversationService) Open(ctx context.Context, name, identity string) (*ConversationTicket, error) {
	conv, err := s.conversations.EnsureConversation(ctx, name)
	if err != nil {
		return nil, err
	}
	token, err := s.tokens.ChatToken(identity)
	if err != nil {
		return nil, fmt.Errorf("issue chat token: %w", err)
	}
	return &ConversationTicket{Conversation: conv, Token: token}, nil
}
