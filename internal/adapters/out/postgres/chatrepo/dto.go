// Package chatrepo persists chat sessions.
package chatrepo

import (
	"time"

	"jibekjoly/internal/core/domain/model/chat"
	"jibekjoly/internal/core/domain/model/kernel"
)

type SessionDTO struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SessionDTO) TableName() string {
	return "chat_sessions"
}

func toDomain(dto SessionDTO) (*chat.Session, error) {
	return chat.RestoreSession(kernel.ID(dto.ID), kernel.ID(dto.OrderID), dto.CreatedAt, dto.UpdatedAt)
}
