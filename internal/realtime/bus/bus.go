package bus

import (
	"context"

	"github.com/yungbote/salesflow-backend/internal/realtime"
)

type Bus interface {
	Publish(ctx context.Context, ev realtime.Event) error
	StartForwarder(ctx context.Context, onEvent func(ev realtime.Event)) error
	Close() error
}

// nopBus drops everything. It stands in when no broker is configured.
type nopBus struct{}

func NewNopBus() Bus { return nopBus{} }

func (nopBus) Publish(context.Context, realtime.Event) error { return nil }

func (nopBus) StartForwarder(context.Context, func(realtime.Event)) error { return nil }

func (nopBus) Close() error { return nil }
