package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"campground/internal/domain/service"
	"campground/internal/errors"
)

// PushMessage is the body Pub/Sub sends to push subscriptions.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func eventAttributes(event *service.CampgroundCreatedEvent) map[string]string {
	attributes := map[string]string{
		"campground_id": event.CampgroundID,
		"author_id":     event.AuthorID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// NewPushMessage wraps event the way a push subscription delivers it
func NewPushMessage(event *service.CampgroundCreatedEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.CampgroundID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeEvent extracts the campground event carried by a push message
func (m *PushMessage) DecodeEvent() (*service.CampgroundCreatedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.CampgroundCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse campground event")
	}

	if event.CampgroundID == "" || event.AuthorID == "" {
		return nil, errors.New("campground event is missing identifiers")
	}

	return &event, nil
}
