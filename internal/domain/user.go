package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a community member. Accounts are provisioned by the identity
// service; this backend only keeps what moderation and voting need.
type User struct {
	ID          uuid.UUID
	DisplayName string
	Role        UserRole
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// NewAuditRecord builds an audit record for a single entity.
func NewAuditRecord(userID uuid.UUID, et EntityType, entityID uuid.UUID, action AuditAction, changes map[string]any, now time.Time) AuditRecord {
	return AuditRecord{
		ID:         uuid.New(),
		UserID:     userID,
		EntityType: et,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  now,
	}
}
