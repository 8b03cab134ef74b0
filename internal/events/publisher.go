package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sarthi-backend/internal/models"

	"github.com/segmentio/kafka-go"
)

type Kind string

const (
	AppointmentBooked    Kind = "appointment.booked"
	AppointmentAccepted  Kind = "appointment.accepted"
	AppointmentDeclined  Kind = "appointment.declined"
	AppointmentCompleted Kind = "appointment.completed"
	AppointmentRated     Kind = "appointment.rated"
)

// AppointmentEvent adalah payload yang dikirim ke topic appointment
type AppointmentEvent struct {
	Kind        Kind               `json:"kind"`
	Appointment models.Appointment `json:"appointment"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, ev AppointmentEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher menulis event appointment ke satu topic, key = id appointment
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}

	log.Printf("[Events] Kafka producer untuk topic %s", topic)
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev AppointmentEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Appointment.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(ev.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Kind, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop dipakai saat KAFKA_BROKERS kosong
type Nop struct{}

func (Nop) Publish(context.Context, AppointmentEvent) error { return nil }
func (Nop) Close() error                                    { return nil }
