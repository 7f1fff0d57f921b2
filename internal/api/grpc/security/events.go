package security

import (
	"context"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/logger"
	pb "github.com/oshokin/catpoint/internal/pb/v1"
	"github.com/oshokin/catpoint/internal/protoconv"
)

// subscriberBuffer is the number of events queued per stream before new ones are dropped.
const subscriberBuffer = 64

// EventHub turns engine notifications into events for every open stream.
// It never blocks the engine: a subscriber that falls behind loses events.
type EventHub struct {
	// subscribers holds the channel of every open stream.
	subscribers map[chan *pb.Event]struct{}
	// mu protects subscribers.
	mu sync.Mutex
	// now returns the event timestamp.
	now func() time.Time
}

// NewEventHub creates an empty hub.
func NewEventHub() *EventHub {
	return &EventHub{
		subscribers: make(map[chan *pb.Event]struct{}),
		now:         time.Now,
	}
}

// Subscribe registers a new subscriber. The returned function unregisters it
// and closes the channel.
func (h *EventHub) Subscribe() (<-chan *pb.Event, func()) {
	ch := make(chan *pb.Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()

			close(ch)
		})
	}
}

// AlarmStatusChanged publishes an alarm status event.
func (h *EventHub) AlarmStatusChanged(ctx context.Context, status domain.AlarmStatus) {
	h.publish(ctx, &pb.Event{
		Kind:        pb.EventKind_EVENT_KIND_ALARM_STATUS,
		Timestamp:   timestamppb.New(h.now()),
		AlarmStatus: protoconv.ToProtoAlarmStatus(status),
	})
}

// CatDetected publishes a camera event.
func (h *EventHub) CatDetected(ctx context.Context, cat bool) {
	h.publish(ctx, &pb.Event{
		Kind:        pb.EventKind_EVENT_KIND_CAT_DETECTED,
		Timestamp:   timestamppb.New(h.now()),
		CatDetected: cat,
	})
}

// SensorStatusChanged publishes a sensor list event.
func (h *EventHub) SensorStatusChanged(ctx context.Context) {
	h.publish(ctx, &pb.Event{
		Kind:      pb.EventKind_EVENT_KIND_SENSORS,
		Timestamp: timestamppb.New(h.now()),
	})
}

func (h *EventHub) publish(ctx context.Context, event *pb.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			logger.WarnKV(ctx, "Event subscriber is too slow, dropping event", "kind", event.GetKind())
		}
	}
}
