// Package provision makes sure video rooms and chat conversations exist
// exactly once per name on the external video platform.
package provision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

// DefaultTimeout bounds every external call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// RoomAPI is the part of the video platform the room provisioner needs.
// FetchRoom returns an error matching errors.ErrNotFound for unknown names,
// CreateRoom one matching errors.ErrAlreadyExists for taken names.
type RoomAPI interface {
	FetchRoom(ctx context.Context, name string) (*model.Room, error)
	CreateRoom(ctx context.Context, opts model.RoomOptions) (*model.Room, error)
}

// RoomResult reports the room and whether this call created it.
type RoomResult struct {
	Created bool        `json:"created"`
	Room    *model.Room `json:"room"`
}

// RoomProvisioner creates rooms on demand.
type RoomProvisioner struct {
	api     RoomAPI
	timeout time.Duration
}

// NewRoomProvisioner returns a provisioner calling api with the given per-call timeout.
func NewRoomProvisioner(api RoomAPI, timeout time.Duration) *RoomProvisioner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RoomProvisioner{api: api, timeout: timeout}
}

// EnsureRoom returns the room named opts.Name, creating it when absent.
// An existing room is not an error.
func (p *RoomProvisioner) EnsureRoom(ctx context.Context, opts model.RoomOptions) (RoomResult, error) {
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		return RoomResult{}, apperr.ErrMissingFields
	}

	room, err := p.fetch(ctx, opts.Name)
	if err == nil {
		return RoomResult{Room: room}, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return RoomResult{}, err
	}

	room, err = p.create(ctx, opts)
	switch {
	case err == nil:
		return RoomResult{Created: true, Room: room}, nil
	case errors.Is(err, apperr.ErrAlreadyExists):
		// lost a race with a concurrent creator
		room, err = p.fetch(ctx, opts.Name)
		if err != nil {
			return RoomResult{}, err
		}
		return RoomResult{Room: room}, nil
	default:
		return RoomResult{}, err
	}
}

func (p *RoomProvisioner) fetch(ctx context.Context, name string) (*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	room, err := p.api.FetchRoom(ctx, name)
	if err != nil {
		return nil, deadline(ctx, fmt.Errorf("fetch room %q: %w", name, err))
	}
	return room, nil
}

func (p *RoomProvisioner) create(ctx context.Context, opts model.RoomOptions) (*model.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	room, err := p.api.CreateRoom(ctx, opts)
	if err != nil {
		return nil, deadline(ctx, fmt.Errorf("create room %q: %w", opts.Name, err))
	}
	return room, nil
}

// deadline tags err with ErrTimeout when the call ran out of time.
func deadline(ctx context.Context, err error) error {
	if errors.Is(err, apperr.ErrTimeout) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", apperr.ErrTimeout, err)
	}
	return err
}
