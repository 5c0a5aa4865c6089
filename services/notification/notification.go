package notification

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"

	"hotelbooking/events"
)

// MelodySink phát event qua websocket cho notifier bên ngoài.
// Engine chỉ đảm bảo phát ít nhất một lần, việc gửi email/SMS do notifier lo.
type MelodySink struct {
	m *melody.Melody
}

func NewMelodySink(m *melody.Melody) *MelodySink {
	return &MelodySink{m: m}
}

func (s *MelodySink) Publish(ctx context.Context, event events.Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.Broadcast(data)
}
