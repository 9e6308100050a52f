// Package twilioclient adapts the Twilio REST and access-token APIs to the
// small interfaces the provisioners depend on.
package twilioclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	conversations "github.com/twilio/twilio-go/rest/conversations/v1"
	video "github.com/twilio/twilio-go/rest/video/v1"

	"vidchat/internal/config"
	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

// roomExistsCode is Twilio's error code for a duplicate unique room name.
const roomExistsCode = 53113

const listPageSize = 100

// Client talks to Twilio Video and Conversations.
type Client struct {
	rest           *twilio.RestClient
	accountSID     string
	apiKey         string
	apiSecret      string
	chatServiceSID string
	tokenTTL       time.Duration
}

// New builds a client authenticated with an API key pair.
func New(cfg config.TwilioConfig) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.APIKey,
		Password:   cfg.APISecret,
		AccountSid: cfg.AccountSID,
	})
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Client{
		rest:           rest,
		accountSID:     cfg.AccountSID,
		apiKey:         cfg.APIKey,
		apiSecret:      cfg.APISecret,
		chatServiceSID: cfg.ChatServiceSID,
		tokenTTL:       ttl,
	}
}

// FetchRoom looks a room up by unique name.
func (c *Client) FetchRoom(ctx context.Context, name string) (*model.Room, error) {
	room, err := call(ctx, func() (*video.VideoV1Room, error) {
		return c.rest.VideoV1.FetchRoom(name)
	})
	if err != nil {
		return nil, translate(ctx, "fetch room", err)
	}
	return toRoom(room), nil
}

// CreateRoom creates a room with the given unique name and options.
func (c *Client) CreateRoom(ctx context.Context, opts model.RoomOptions) (*model.Room, error) {
	params := &video.CreateRoomParams{}
	params.SetUniqueName(opts.Name)
	if opts.Type != "" {
		params.SetType(opts.Type)
	}
	if opts.MaxParticipants > 0 {
		params.SetMaxParticipants(opts.MaxParticipants)
	}
	params.SetAudioOnly(opts.AudioOnly)

	room, err := call(ctx, func() (*video.VideoV1Room, error) {
		return c.rest.VideoV1.CreateRoom(params)
	})
	if err != nil {
		return nil, translate(ctx, "create room", err)
	}
	return toRoom(room), nil
}

// ListConversations returns every conversation of the configured chat service.
// The SDK walks all pages itself, so the result never carries a next page token.
func (c *Client) ListConversations(ctx context.Context, _ string) (model.ConversationPage, error) {
	if c.chatServiceSID == "" {
		params := &conversations.ListConversationParams{}
		params.SetPageSize(listPageSize)
		list, err := call(ctx, func() ([]conversations.ConversationsV1Conversation, error) {
			return c.rest.ConversationsV1.ListConversation(params)
		})
		if err != nil {
			return model.ConversationPage{}, translate(ctx, "list conversations", err)
		}
		items := make([]model.Conversation, 0, len(list))
		for _, conv := range list {
			items = append(items, model.Conversation{
				SID:            toString(conv.Sid),
				FriendlyName:   toString(conv.FriendlyName),
				ChatServiceSID: toString(conv.ChatServiceSid),
			})
		}
		return model.ConversationPage{Items: items}, nil
	}

	params := &conversations.ListServiceConversationParams{}
	params.SetPageSize(listPageSize)
	list, err := call(ctx, func() ([]conversations.ConversationsV1ServiceConversation, error) {
		return c.rest.ConversationsV1.ListServiceConversation(c.chatServiceSID, params)
	})
	if err != nil {
		return model.ConversationPage{}, translate(ctx, "list conversations", err)
	}
	items := make([]model.Conversation, 0, len(list))
	for _, conv := range list {
		items = append(items, model.Conversation{
			SID:            toString(conv.Sid),
			FriendlyName:   toString(conv.FriendlyName),
			ChatServiceSID: toString(conv.ChatServiceSid),
		})
	}
	return model.ConversationPage{Items: items}, nil
}

// CreateConversation creates a conversation with the given friendly name.
func (c *Client) CreateConversation(ctx context.Context, friendlyName string) (*model.Conversation, error) {
	if c.chatServiceSID == "" {
		params := &conversations.CreateConversationParams{}
		params.SetFriendlyName(friendlyName)
		conv, err := call(ctx, func() (*conversations.ConversationsV1Conversation, error) {
			return c.rest.ConversationsV1.CreateConversation(params)
		})
		if err != nil {
			return nil, translate(ctx, "create conversation", err)
		}
		return &model.Conversation{
			SID:            toString(conv.Sid),
			FriendlyName:   toString(conv.FriendlyName),
			ChatServiceSID: toString(conv.ChatServiceSid),
		}, nil
	}

	params := &conversations.CreateServiceConversationParams{}
	params.SetFriendlyName(friendlyName)
	conv, err := call(ctx, func() (*conversations.ConversationsV1ServiceConversation, error) {
		return c.rest.ConversationsV1.CreateServiceConversation(c.chatServiceSID, params)
	})
	if err != nil {
		return nil, translate(ctx, "create conversation", err)
	}
	return &model.Conversation{
		SID:            toString(conv.Sid),
		FriendlyName:   toString(conv.FriendlyName),
		ChatServiceSID: toString(conv.ChatServiceSid),
	}, nil
}

// call runs a blocking SDK request and gives up when ctx ends.
// The SDK has no context support; an abandoned request finishes on its own HTTP timeout.
func call[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

func translate(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("twilio %s: %w", op, apperr.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("twilio %s: %w", op, err)
	}
	var restErr *twclient.TwilioRestError
	if errors.As(err, &restErr) {
		switch {
		case restErr.Status == http.StatusNotFound:
			return fmt.Errorf("twilio %s: %w: %s", op, apperr.ErrNotFound, restErr.Message)
		case restErr.Code == roomExistsCode:
			return fmt.Errorf("twilio %s: %w: %s", op, apperr.ErrAlreadyExists, restErr.Message)
		}
	}
	return fmt.Errorf("twilio %s: %w: %w", op, apperr.ErrExternalService, err)
}

func toRoom(r *video.VideoV1Room) *model.Room {
	if r == nil {
		return nil
	}
	room := &model.Room{
		SID:        toString(r.Sid),
		UniqueName: toString(r.UniqueName),
		Type:       toString(r.Type),
		Status:     toString(r.Status),
	}
	if r.MaxParticipants != nil {
		room.MaxParticipants = *r.MaxParticipants
	}
	if r.AudioOnly != nil {
		room.AudioOnly = *r.AudioOnly
	}
	return room
}

// toString renders optional SDK fields, including the generated enum types.
func toString[T any](p *T) string {
	if p == nil {
		return ""
	}
	return fmt.Sprint(*p)
}
