package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Minimal snapshots for command read operations
type ListingSnapshot struct {
	ID     uuid.UUID
	HostID uuid.UUID
	Name   string
	Price  decimal.Decimal
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Role  string
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
}

const (
	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

const (
	TopicReservationCreated = "reservation.created"
	TopicReservationPaid    = "reservation.paid"
)

type NotificationJob struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	Attempts    int32
	RunAt       time.Time
}
