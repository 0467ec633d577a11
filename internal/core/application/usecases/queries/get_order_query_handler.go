package queries

import (
	"context"

	"jibekjoly/internal/core/domain/services"
	"jibekjoly/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	readOrderAction = "read order"
	readChatAction  = "read order chat"
)

// GetOrderQueryHandler returns errs.ObjectNotFoundError for an unknown order and
// errs.AccessDeniedError when the caller may not read it.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewOrderAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	view, err := findOrder(ctx, h.db, query.OrderID().Int64())
	if err != nil {
		return OrderView{}, err
	}

	if !h.policy.CanRead(query.Actor(), view) {
		return OrderView{}, errs.NewAccessDeniedError(readOrderAction, "")
	}
	return view, nil
}

// GetOrderChatQueryHandler returns the session created when the order was
// claimed. Before the claim there is none and every caller gets
// errs.ObjectNotFoundError for "chat"; after it only participants and staff
// see the session.
type GetOrderChatQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderChatQueryHandler(db *gorm.DB) GetOrderChatQueryHandler {
	return GetOrderChatQueryHandler{db: db, policy: services.NewOrderAccessPolicy()}
}

func (h GetOrderChatQueryHandler) Handle(ctx context.Context, query GetOrderChatQuery) (ChatSessionView, error) {
	if err := query.Validate(); err != nil {
		return ChatSessionView{}, err
	}

	view, err := findOrder(ctx, h.db, query.OrderID().Int64())
	if err != nil {
		return ChatSessionView{}, err
	}

	sessions, err := queryChats(ctx, h.db, " WHERE c.order_id = ?", view.ID.Int64())
	if err != nil {
		return ChatSessionView{}, err
	}
	if len(sessions) == 0 {
		return ChatSessionView{}, errs.NewObjectNotFoundError("chat", view.ID.Int64())
	}

	if !h.policy.CanViewChat(query.Actor(), view) {
		return ChatSessionView{}, errs.NewAccessDeniedError(readChatAction, "")
	}
	return sessions[0], nil
}

func findOrder(ctx context.Context, db *gorm.DB, id int64) (OrderView, error) {
	views, err := queryOrders(ctx, db, " WHERE o.id = ?", id)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", id)
	}
	return views[0], nil
}
