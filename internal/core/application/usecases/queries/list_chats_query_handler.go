package queries

import (
	"context"

	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type ListChatsQueryHandler struct {
	db *gorm.DB
}

func NewListChatsQueryHandler(db *gorm.DB) ListChatsQueryHandler {
	return ListChatsQueryHandler{db: db}
}

func (h ListChatsQueryHandler) Handle(ctx context.Context, query ListChatsQuery) ([]ChatSessionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	switch actor.Kind() {
	case identity.Staff:
		return queryChats(ctx, h.db, "")
	case identity.Client:
		p, _ := actor.ClientProfile()
		return queryChats(ctx, h.db, " WHERE o.client_id = ?", p.ID().Int64())
	case identity.Courier:
		p, _ := actor.CourierProfile()
		return queryChats(ctx, h.db, " WHERE o.courier_id = ?", p.ID().Int64())
	case identity.Unprofiled:
	}
	return make([]ChatSessionView, 0), nil
}

func queryChats(ctx context.Context, db *gorm.DB, where string, args ...any) ([]ChatSessionView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.order_id,
			o.unique_order_id,
			c.created_at,
			c.updated_at
		FROM chat_sessions c
		JOIN orders o ON o.id = c.order_id`+where+`
		ORDER BY c.updated_at DESC, c.id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]ChatSessionView, 0)
	for rows.Next() {
		var (
			session     ChatSessionView
			id, orderID int64
		)
		if err = rows.Scan(&id, &orderID, &session.OrderCode, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, err
		}
		session.ID = kernel.ID(id)
		session.OrderID = kernel.ID(orderID)
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
