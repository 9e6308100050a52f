package model

// Room is a provisioned video room as reported by the video service.
type Room struct {
	SID             string `json:"sid"`
	UniqueName      string `json:"uniqueName"`
	Type            string `json:"type,omitempty"`
	Status          string `json:"status,omitempty"`
	MaxParticipants int    `json:"maxParticipants,omitempty"`
	AudioOnly       bool   `json:"audioOnly"`
}

// RoomOptions are the creation parameters for a video room.
type RoomOptions struct {
	Name            string `json:"roomName" validate:"required,max=128"`
	Type            string `json:"type" validate:"omitempty,oneof=go peer-to-peer group group-small"`
	MaxParticipants int    `json:"maxParticipants" validate:"gte=0,lte=50"`
	AudioOnly       bool   `json:"audioOnly"`
}

// Conversation is a chat conversation hosted by the conversations service.
type Conversation struct {
	SID            string `json:"sid"`
	FriendlyName   string `json:"friendlyName"`
	ChatServiceSID string `json:"chatServiceSid,omitempty"`
}

// ConversationPage is one page of a conversation listing. An empty
// NextPageToken marks the last page.
type ConversationPage struct {
	Items         []Conversation
	NextPageToken string
}
