package provision

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
)

// MockRoomAPI is a mock implementation of RoomAPI.
type MockRoomAPI struct {
	mock.Mock
}

func (m *MockRoomAPI) FetchRoom(ctx context.Context, name string) (*model.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

func (m *MockRoomAPI) CreateRoom(ctx context.Context, opts model.RoomOptions) (*model.Room, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Room), args.Error(1)
}

func TestEnsureRoom(t *testing.T) {
	opts := model.RoomOptions{Name: "standup", Type: "group", MaxParticipants: 10}
	room := &model.Room{SID: "RM1", UniqueName: "standup", Type: "group"}
	notFound := fmt.Errorf("twilio fetch room: %w", apperr.ErrNotFound)
	exists := fmt.Errorf("twilio create room: %w", apperr.ErrAlreadyExists)
	boom := fmt.Errorf("twilio fetch room: %w", apperr.ErrExternalService)

	tests := []struct {
		name        string
		setup       func(api *MockRoomAPI)
		wantCreated bool
		wantErr     error
	}{
		{
			name: "creates missing room",
			setup: func(api *MockRoomAPI) {
				api.On("FetchRoom", mock.Anything, "standup").Return(nil, notFound).Once()
				api.On("CreateRoom", mock.Anything, opts).Return(room, nil).Once()
			},
			wantCreated: true,
		},
		{
			name: "existing room is success",
			setup: func(api *MockRoomAPI) {
				api.On("FetchRoom", mock.Anything, "standup").Return(room, nil).Once()
			},
		},
		{
			name: "fetch failure other than not found is returned",
			setup: func(api *MockRoomAPI) {
				api.On("FetchRoom", mock.Anything, "standup").Return(nil, boom).Once()
			},
			wantErr: apperr.ErrExternalService,
		},
		{
			name: "lost create race refetches",
			setup: func(api *MockRoomAPI) {
				api.On("FetchRoom", mock.Anything, "standup").Return(nil, notFound).Once()
				api.On("CreateRoom", mock.Anything, opts).Return(nil, exists).Once()
				api.On("FetchRoom", mock.Anything, "standup").Return(room, nil).Once()
			},
		},
		{
			name: "create failure is returned",
			setup: func(api *MockRoomAPI) {
				api.On("FetchRoom", mock.Anything, "standup").Return(nil, notFound).Once()
				api.On("CreateRoom", mock.Anything, opts).Return(nil, fmt.Errorf("create: %w", apperr.ErrExternalService)).Once()
			},
			wantErr: apperr.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockRoomAPI)
			tt.setup(api)
			p := NewRoomProvisioner(api, time.Second)

			got, err := p.EnsureRoom(context.Background(), opts)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, got.Created)
				assert.Equal(t, room, got.Room)
			}
			api.AssertExpectations(t)
		})
	}
}

func TestEnsureRoom_SecondCallReportsNotCreated(t *testing.T) {
	api := new(MockRoomAPI)
	room := &model.Room{SID: "RM1", UniqueName: "standup"}
	opts := model.RoomOptions{Name: "standup"}
	api.On("FetchRoom", mock.Anything, "standup").Return(nil, apperr.ErrNotFound).Once()
	api.On("CreateRoom", mock.Anything, opts).Return(room, nil).Once()
	api.On("FetchRoom", mock.Anything, "standup").Return(room, nil).Once()
	p := NewRoomProvisioner(api, time.Second)

	first, err := p.EnsureRoom(context.Background(), opts)
	require.NoError(t, err)
	second, err := p.EnsureRoom(context.Background(), opts)
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.Room.SID, second.Room.SID)
	assert.Equal(t, first.Room.UniqueName, second.Room.UniqueName)
	api.AssertExpectations(t)
}

func TestEnsureRoom_EmptyName(t *testing.T) {
	api := new(MockRoomAPI)
	p := NewRoomProvisioner(api, time.Second)

	_, err := p.EnsureRoom(context.Background(), model.RoomOptions{Name: "  "})

	assert.ErrorIs(t, err, apperr.ErrMissingFields)
	api.AssertNotCalled(t, "FetchRoom", mock.Anything, mock.Anything)
}

func TestEnsureRoom_Timeout(t *testing.T) {
	api := new(MockRoomAPI)
	api.On("FetchRoom", mock.Anything, "slow").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(nil, context.DeadlineExceeded).Once()
	p := NewRoomProvisioner(api, 10*time.Millisecond)

	_, err := p.EnsureRoom(context.Background(), model.RoomOptions{Name: "slow"})

	assert.ErrorIs(t, err, apperr.ErrTimeout)
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
}
