package http

import (
	"context"
	"net/http"

	"jibekjoly/internal/core/application/usecases/commands"
	"jibekjoly/internal/core/application/usecases/queries"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	ProfileUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateProfileCommand) (identity.Profile, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
	AvailableOrderLister interface {
		Handle(ctx context.Context, query queries.ListAvailableOrdersQuery) ([]queries.OrderView, error)
	}
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	OrderChatReader interface {
		Handle(ctx context.Context, query queries.GetOrderChatQuery) (queries.ChatSessionView, error)
	}
	ChatLister interface {
		Handle(ctx context.Context, query queries.ListChatsQuery) ([]queries.ChatSessionView, error)
	}
	StatusLister interface {
		Handle(ctx context.Context, query queries.ListStatusesQuery) ([]queries.StatusView, error)
	}
	CityLister interface {
		Handle(ctx context.Context, query queries.ListCitiesQuery) ([]queries.CityView, error)
	}
	PackageSizeLister interface {
		Handle(ctx context.Context, query queries.ListPackageSizesQuery) ([]queries.PackageSizeView, error)
	}
)

// Handlers are the use cases the HTTP interface exposes.
type Handlers struct {
	CreateOrder         OrderCreator
	UpdateOrder         OrderUpdater
	UpdateProfile       ProfileUpdater
	ListOrders          OrderLister
	ListAvailableOrders AvailableOrderLister
	GetOrder            OrderReader
	GetOrderChat        OrderChatReader
	ListChats           ChatLister
	ListStatuses        StatusLister
	ListCities          CityLister
	ListPackageSizes    PackageSizeLister
}

// Server maps HTTP requests onto application use cases.
type Server struct {
	handlers Handlers
	me       queries.GetMeQueryHandler
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		me:       queries.NewGetMeQueryHandler(),
		logger:   logger,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	actor := actorFrom(c)
	cmd, err := commands.NewCreateOrderCommand(actor, body.toDomain())
	if err != nil {
		return s.errorResponse(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return s.respondWithOrder(c, http.StatusCreated, actor, created.ID())
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(actorFrom(c))
	if err != nil {
		return s.errorResponse(c, err)
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// ListAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) ListAvailableOrders(c echo.Context) error {
	query, err := queries.NewListAvailableOrdersQuery(actorFrom(c))
	if err != nil {
		return s.errorResponse(c, err)
	}

	views, err := s.handlers.ListAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "id", "Invalid order id")
	}

	return s.respondWithOrder(c, http.StatusOK, actorFrom(c), id)
}

// UpdateOrder handles PATCH /api/v1/orders/{id}: claim, courier edit,
// cancellation or staff override, depending on who calls.
func (s *Server) UpdateOrder(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "id", "Invalid order id")
	}

	var body OrderPatch
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	actor := actorFrom(c)
	cmd, err := commands.NewUpdateOrderCommand(actor, id, body.toDomain())
	if err != nil {
		return s.errorResponse(c, err)
	}

	if _, err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.errorResponse(c, err)
	}

	return s.respondWithOrder(c, http.StatusOK, actor, id)
}

// GetOrderChat handles GET /api/v1/orders/{id}/chat.
func (s *Server) GetOrderChat(c echo.Context) error {
	id, err := orderIDParam(c)
	if err != nil {
		return badRequest(c, "id", "Invalid order id")
	}

	query, err := queries.NewGetOrderChatQuery(actorFrom(c), id)
	if err != nil {
		return s.errorResponse(c, err)
	}

	session, err := s.handlers.GetOrderChat.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toChatSession(session))
}

// ListChats handles GET /api/v1/chats.
func (s *Server) ListChats(c echo.Context) error {
	query, err := queries.NewListChatsQuery(actorFrom(c))
	if err != nil {
		return s.errorResponse(c, err)
	}

	sessions, err := s.handlers.ListChats.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}

	resp := make([]ChatSession, len(sessions))
	for i, session := range sessions {
		resp[i] = toChatSession(session)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListOrderStatuses handles GET /api/v1/orders/statuses.
func (s *Server) ListOrderStatuses(c echo.Context) error {
	statuses, err := s.handlers.ListStatuses.Handle(c.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return s.errorResponse(c, err)
	}

	resp := make([]Status, len(statuses))
	for i, status := range statuses {
		resp[i] = toStatus(status)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListCities handles GET /api/v1/core/cities.
func (s *Server) ListCities(c echo.Context) error {
	cities, err := s.handlers.ListCities.Handle(c.Request().Context(), queries.NewListCitiesQuery())
	if err != nil {
		return s.errorResponse(c, err)
	}

	resp := make([]City, len(cities))
	for i, city := range cities {
		resp[i] = toCity(city)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListPackageSizes handles GET /api/v1/core/package-sizes.
func (s *Server) ListPackageSizes(c echo.Context) error {
	sizes, err := s.handlers.ListPackageSizes.Handle(c.Request().Context(), queries.NewListPackageSizesQuery())
	if err != nil {
		return s.errorResponse(c, err)
	}

	resp := make([]PackageSize, len(sizes))
	for i, size := range sizes {
		resp[i] = toPackageSize(size)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetMe handles GET /api/v1/users/me.
func (s *Server) GetMe(c echo.Context) error {
	return s.respondWithMe(c, actorFrom(c))
}

// UpdateMe handles PATCH /api/v1/users/me. Orders placed earlier keep the
// sender name they were placed with.
func (s *Server) UpdateMe(c echo.Context) error {
	var body ProfilePatch
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "", "Invalid request body")
	}

	actor := actorFrom(c)
	cmd, err := commands.NewUpdateProfileCommand(actor, body.FullName)
	if err != nil {
		return s.errorResponse(c, err)
	}

	profile, err := s.handlers.UpdateProfile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(c, err)
	}

	return s.respondWithMe(c, identity.NewActor(actor.User(), &profile))
}

func (s *Server) respondWithMe(c echo.Context, actor identity.Actor) error {
	query, err := queries.NewGetMeQuery(actor)
	if err != nil {
		return s.errorResponse(c, err)
	}

	me, err := s.me.Handle(query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toMe(me))
}

// respondWithOrder reads the order back with every reference resolved.
func (s *Server) respondWithOrder(c echo.Context, status int, actor identity.Actor, id kernel.ID) error {
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return s.errorResponse(c, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(status, toOrder(view))
}

func orderIDParam(c echo.Context) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, err
	}
	return kernel.NewID("id", raw)
}
