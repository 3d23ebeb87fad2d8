package events

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/kafka"
)

// EventProducer writes CloudEvents to a topic.
type EventProducer interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// BookingPublisher publishes booking lifecycle events as CloudEvents.
// Failures are logged and swallowed.
type BookingPublisher struct {
	producer EventProducer
	topic    string
	logger   *zap.Logger
}

// NewBookingPublisher creates a new BookingPublisher.
func NewBookingPublisher(producer EventProducer, topic string, logger *zap.Logger) *BookingPublisher {
	return &BookingPublisher{producer: producer, topic: topic, logger: logger}
}

// PublishCreated emits shareit.booking.created.
func (p *BookingPublisher) PublishCreated(ctx context.Context, bk *bookingDomain.Booking) {
	p.publish(ctx, BookingCreated, bk)
}

// PublishDecided emits shareit.booking.approved or shareit.booking.rejected.
func (p *BookingPublisher) PublishDecided(ctx context.Context, bk *bookingDomain.Booking) {
	eventType := BookingRejected
	if bk.Status() == bookingDomain.StatusApproved {
		eventType = BookingApproved
	}
	p.publish(ctx, eventType, bk)
}

func (p *BookingPublisher) publish(ctx context.Context, eventType string, bk *bookingDomain.Booking) {
	evt := BookingEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.ItemID(),
		BookerID:   bk.BookerID(),
		Start:      bk.Start(),
		End:        bk.End(),
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	cloudEvent, err := kafka.NewCloudEvent(EventSource, eventType, evt)
	if err != nil {
		p.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	cloudEvent.Subject = strconv.FormatInt(bk.ID(), 10)

	if err := p.producer.PublishEvent(ctx, p.topic, cloudEvent); err != nil {
		p.logger.Error("failed to publish event",
			zap.String("topic", p.topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// NoopPublisher discards events. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishCreated(context.Context, *bookingDomain.Booking) {}
func (NoopPublisher) PublishDecided(context.Context, *bookingDomain.Booking) {}
