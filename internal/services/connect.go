package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/skillswap-in/skillswap-server/internal/logger"
	"github.com/skillswap-in/skillswap-server/internal/models"
)

// Error variables
var (
	ErrRequestNotFound = errors.New("connect request not found")
	ErrInvalidStatus   = errors.New("invalid status")
)

// RequestReader defines read operations for connect requests.
type RequestReader interface {
	ListByRecipient(ctx context.Context, email string) ([]models.ConnectRequestDB, error)
}

// RequestWriter defines write operations for connect requests.
type RequestWriter interface {
	Save(ctx context.Context, from, to, message string) (*models.ConnectRequestDB, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status string) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConnectService handles the connect request lifecycle and publishes
// lifecycle events to Kafka.
type ConnectService struct {
	reader      RequestReader
	writer      RequestWriter
	kafkaWriter KafkaWriter
}

// NewConnectService creates a new ConnectService.
func NewConnectService(reader RequestReader, writer RequestWriter, kafkaWriter KafkaWriter) *ConnectService {
	return &ConnectService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a connect lifecycle event to Kafka.
func (svc *ConnectService) publishEvent(ctx context.Context, event models.ConnectEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "request_id", event.RequestID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal connect event", "request_id", event.RequestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RequestID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish connect event", "request_id", event.RequestID, "error", err)
	} else {
		logger.Log.Infow("connect event published", "request_id", event.RequestID, "action", event.Action)
	}
}

// Send inserts a pending request from one email to another. Neither
// side is validated against existing profiles, and self-requests are
// not rejected.
func (svc *ConnectService) Send(ctx context.Context, from, to, message string) error {
	created, err := svc.writer.Save(ctx, from, to, message)
	if err != nil {
		logger.Log.Errorw("failed to save connect request", "from", from, "to", to, "err", err)
		return err
	}

	svc.publishEvent(ctx, models.ConnectEvent{
		EventID:   uuid.NewString(),
		RequestID: created.RequestID.String(),
		Action:    models.EventConnectSent,
		From:      created.From,
		To:        created.To,
		Status:    created.Status,
		Timestamp: time.Now().Unix(),
	})

	return nil
}

// ListReceived returns all requests addressed to the given email.
func (svc *ConnectService) ListReceived(ctx context.Context, email string) ([]models.ConnectRequestDB, error) {
	requests, err := svc.reader.ListByRecipient(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list received requests", "email", email, "err", err)
		return nil, err
	}
	return requests, nil
}

// Respond overwrites the request status. Only accepted and rejected
// are valid; the overwrite is unconditional, so a later call may flip
// the status again.
func (svc *ConnectService) Respond(ctx context.Context, id, status string) error {
	if status != models.StatusAccepted && status != models.StatusRejected {
		return ErrInvalidStatus
	}

	requestID, err := uuid.Parse(id)
	if err != nil {
		return ErrRequestNotFound
	}

	rows, err := svc.writer.UpdateStatus(ctx, requestID, status)
	if err != nil {
		logger.Log.Errorw("failed to update request status", "request_id", requestID, "status", status, "err", err)
		return err
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	svc.publishEvent(ctx, models.ConnectEvent{
		EventID:   uuid.NewString(),
		RequestID: requestID.String(),
		Action:    models.EventConnectResponded,
		Status:    status,
		Timestamp: time.Now().Unix(),
	})

	return nil
}
