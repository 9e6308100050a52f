package provision

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

const (
	lockPrefix = "conversation:"
	// lockTTLFactor sizes the lock against the per-call timeout. The locked
	// section is bounded to one timeout less than the lock lifetime.
	lockTTLFactor = 3
	// maxPages stops a listing whose page token never runs out.
	maxPages = 1000
)

// ConversationAPI is the part of the conversations service the provisioner needs.
type ConversationAPI interface {
	ListConversations(ctx context.Context, pageToken string) (model.ConversationPage, error)
	CreateConversation(ctx context.Context, friendlyName string) (*model.Conversation, error)
}

// Locker serializes provisioning of one name across instances.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), err error)
}

// ConversationProvisioner creates conversations on demand.
type ConversationProvisioner struct {
	api     ConversationAPI
	locker  Locker
	timeout time.Duration
	lockTTL time.Duration
}

// NewConversationProvisioner builds a provisioner. A nil locker runs unlocked,
// in which case two concurrent callers may both create a conversation.
func NewConversationProvisioner(api ConversationAPI, locker Locker, timeout time.Duration) *ConversationProvisioner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ConversationProvisioner{
		api:     api,
		locker:  locker,
		timeout: timeout,
		lockTTL: lockTTLFactor * timeout,
	}
}

// EnsureConversation returns the conversation whose friendly name equals name,
// creating it when no page of the listing holds one.
func (p *ConversationProvisioner) EnsureConversation(ctx context.Context, name string) (*model.Conversation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.ErrMissingFields
	}

	if p.locker != nil {
		release, err := p.locker.Acquire(ctx, lockPrefix+name, p.lockTTL)
		if err != nil {
			return nil, deadline(ctx, fmt.Errorf("lock conversation %q: %w", name, err))
		}
		defer release()

		// the lock must outlive the work it guards
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.lockTTL-p.timeout)
		defer cancel()
	}

	existing, err := p.find(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	conv, err := p.api.CreateConversation(cctx, name)
	if err != nil {
		return nil, deadline(cctx, fmt.Errorf("create conversation %q: %w", name, err))
	}
	return conv, nil
}

func (p *ConversationProvisioner) find(ctx context.Context, name string) (*model.Conversation, error) {
	token := ""
	for range maxPages {
		page, err := p.list(ctx, token)
		if err != nil {
			return nil, err
		}
		for i := range page.Items {
			if page.Items[i].FriendlyName == name {
				conv := page.Items[i]
				return &conv, nil
			}
		}
		if page.NextPageToken == "" {
			return nil, nil
		}
		token = page.NextPageToken
	}
	return nil, fmt.Errorf("list conversations: more than %d pages: %w", maxPages, apperr.ErrExternalService)
}

func (p *ConversationProvisioner) list(ctx context.Context, token string) (model.ConversationPage, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	page, err := p.api.ListConversations(ctx, token)
	if err != nil {
		return model.ConversationPage{}, deadline(ctx, fmt.Errorf("list conversations: %w", err))
	}
	return page, nil
}
