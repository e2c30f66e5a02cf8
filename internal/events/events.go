package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"directory/config"
	"directory/internal/database"
	"directory/internal/logger"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

// ChannelEmployees carries create/update/delete notifications for the
// employee collection. Subscribers re-render or fan out to clients.
const ChannelEmployees = "employees"

const pubsubChannel = "directory:events"

type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	Origin    string         `json:"origin,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Handler func(Event)

// EventBus dispatches events to in-process subscribers and relays them
// through valkey pub/sub so other instances see them too. Events received
// from valkey with this instance's origin id are dropped to avoid double
// dispatch.
type EventBus struct {
	cache  database.CacheClient
	origin string
	log    logger.Logger

	mu          sync.RWMutex
	subscribers map[string][]Handler

	cancel context.CancelFunc
}

func New(cache database.CacheClient, config config.Config) *EventBus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &EventBus{
		cache:       cache,
		origin:      uuid.New().String(),
		log:         logger.New("EventBus"),
		subscribers: make(map[string][]Handler),
		cancel:      cancel,
	}

	if cache != nil {
		go bus.receive(ctx)
	}

	return bus
}

func (b *EventBus) Subscribe(channel string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[channel] = append(b.subscribers[channel], handler)
}

func (b *EventBus) Publish(channel string, event Event) error {
	log := b.log.Function("Publish")

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.Channel = channel
	event.Origin = b.origin

	b.dispatch(event)

	if b.cache == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "event", event)
	}

	ctx, cancelPublish := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPublish()

	cmd := b.cache.B().Publish().Channel(pubsubChannel).Message(string(payload)).Build()
	if err := b.cache.Do(ctx, cmd).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

func (b *EventBus) dispatch(event Event) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[event.Channel]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

func (b *EventBus) receive(ctx context.Context) {
	log := b.log.Function("receive")

	cmd := b.cache.B().Subscribe().Channel(pubsubChannel).Build()
	err := b.cache.Receive(ctx, cmd, func(msg valkey.PubSubMessage) {
		var event Event
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			log.Er("failed to decode event payload", err)
			return
		}
		if event.Origin == b.origin {
			return
		}
		b.dispatch(event)
	})
	if err != nil && ctx.Err() == nil {
		log.Er("event subscription ended", err)
	}
}

func (b *EventBus) Close() error {
	b.cancel()
	return nil
}
