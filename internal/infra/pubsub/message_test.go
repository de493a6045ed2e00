package pubsub

import (
	"encoding/base64"
	"testing"

	"campground/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessage_RoundTrip(t *testing.T) {
	event := &service.CampgroundCreatedEvent{
		RequestID:      "req-1",
		CampgroundID:   "c5d9b7a2-1f5e-4c1b-9b0a-3f8c2e6d4a10",
		CampgroundName: "Pine Ridge",
		AuthorID:       "0f3b8a1e-7c2d-4e5f-8a9b-1c2d3e4f5a6b",
		AuthorUsername: "alice",
	}

	msg, err := NewPushMessage(event, "sub")
	require.NoError(t, err)

	assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])
	assert.Equal(t, event.CampgroundID, msg.Message.MessageID)

	decoded, err := msg.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestPushMessage_OmitsEmptyRequestID(t *testing.T) {
	msg, err := NewPushMessage(&service.CampgroundCreatedEvent{CampgroundID: "c", AuthorID: "a"}, "sub")
	require.NoError(t, err)

	_, ok := msg.Message.Attributes["request_id"]
	assert.False(t, ok)
}

func TestPushMessage_DecodeEvent_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid base64", data: "!!!"},
		{name: "invalid json", data: base64.StdEncoding.EncodeToString([]byte("{"))},
		{name: "missing campground", data: base64.StdEncoding.EncodeToString([]byte(`{"author_id":"a"}`))},
		{name: "missing author", data: base64.StdEncoding.EncodeToString([]byte(`{"campground_id":"c"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = tt.data

			_, err := msg.DecodeEvent()

			assert.Error(t, err)
		})
	}
}
