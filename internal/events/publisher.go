package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const OrderStatusChanged = "order.status_changed"

var tracer = otel.Tracer("pod-storefront/events")

// Publisher announces order status changes to other systems.
type Publisher interface {
	PublishOrderStatus(ctx context.Context, event models.OrderStatusEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
	}, topic)
}

func newKafkaPublisher(w messageWriter, topic string) *kafkaPublisher {
	return &kafkaPublisher{writer: w, topic: topic}
}

// PublishOrderStatus keys messages by order id so one order's events stay ordered.
func (p *kafkaPublisher) PublishOrderStatus(ctx context.Context, event models.OrderStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}

	key := event.OrderID.String()
	msg := kafka.Message{
		Key:     []byte(key),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(OrderStatusChanged)}},
	}

	ctx, span := tracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{msg: &msg})

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return fmt.Errorf("publish order event: %w", err)
	}

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishOrderStatus(context.Context, models.OrderStatusEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
