package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "jibekjoly/internal/adapters/in/http"
	"jibekjoly/internal/core/application/usecases/commands"
	"jibekjoly/internal/core/application/usecases/queries"
	"jibekjoly/internal/core/domain/model/identity"
	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/pkg/errs"

	"github.com/go-chi/jwtauth/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

// MockHandler mocks any use case with a Handle(ctx, input) (output, error) shape.
type MockHandler[In any, Out any] struct {
	mock.Mock
}

func (m *MockHandler[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	var out Out
	if v := args.Get(0); v != nil {
		out = v.(Out)
	}
	return out, args.Error(1)
}

// fakeUsers resolves actors from a fixed set of users.
type fakeUsers map[kernel.ID]identity.Actor

func (f fakeUsers) Handle(_ context.Context, id kernel.ID) (identity.Actor, error) {
	actor, ok := f[id]
	if !ok {
		return identity.Actor{}, errs.NewObjectNotFoundError("user", id.Int64())
	}
	return actor, nil
}

type mocks struct {
	createOrder      *MockHandler[commands.CreateOrderCommand, *order.Order]
	updateOrder      *MockHandler[commands.UpdateOrderCommand, *order.Order]
	updateProfile    *MockHandler[commands.UpdateProfileCommand, identity.Profile]
	listOrders       *MockHandler[queries.ListOrdersQuery, []queries.OrderView]
	listAvailable    *MockHandler[queries.ListAvailableOrdersQuery, []queries.OrderView]
	getOrder         *MockHandler[queries.GetOrderQuery, queries.OrderView]
	getOrderChat     *MockHandler[queries.GetOrderChatQuery, queries.ChatSessionView]
	listChats        *MockHandler[queries.ListChatsQuery, []queries.ChatSessionView]
	listStatuses     *MockHandler[queries.ListStatusesQuery, []queries.StatusView]
	listCities       *MockHandler[queries.ListCitiesQuery, []queries.CityView]
	listPackageSizes *MockHandler[queries.ListPackageSizesQuery, []queries.PackageSizeView]
}

type testAPI struct {
	t     *testing.T
	echo  *echo.Echo
	auth  *jwtauth.JWTAuth
	mocks mocks
}

var (
	clientActor  identity.Actor
	courierActor identity.Actor
	staffActor   identity.Actor
)

func actorOf(t *testing.T, id int64, role identity.Role, staff bool, name string) identity.Actor {
	t.Helper()
	user, err := identity.RestoreUser(kernel.ID(id), fmt.Sprintf("+7701%07d", id), role, staff)
	require.NoError(t, err)
	if name == "" {
		return identity.NewActor(user, nil)
	}
	p, err := identity.RestoreProfile(kernel.ID(id), name, user.Phone())
	require.NoError(t, err)
	return identity.NewActor(user, &p)
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	clientActor = actorOf(t, 11, identity.RoleClient, false, "Aigerim Sarsenova")
	courierActor = actorOf(t, 21, identity.RoleCourier, false, "Daniyar Abenov")
	staffActor = actorOf(t, 1, identity.RoleClient, true, "")

	m := mocks{
		createOrder:      new(MockHandler[commands.CreateOrderCommand, *order.Order]),
		updateOrder:      new(MockHandler[commands.UpdateOrderCommand, *order.Order]),
		updateProfile:    new(MockHandler[commands.UpdateProfileCommand, identity.Profile]),
		listOrders:       new(MockHandler[queries.ListOrdersQuery, []queries.OrderView]),
		listAvailable:    new(MockHandler[queries.ListAvailableOrdersQuery, []queries.OrderView]),
		getOrder:         new(MockHandler[queries.GetOrderQuery, queries.OrderView]),
		getOrderChat:     new(MockHandler[queries.GetOrderChatQuery, queries.ChatSessionView]),
		listChats:        new(MockHandler[queries.ListChatsQuery, []queries.ChatSessionView]),
		listStatuses:     new(MockHandler[queries.ListStatusesQuery, []queries.StatusView]),
		listCities:       new(MockHandler[queries.ListCitiesQuery, []queries.CityView]),
		listPackageSizes: new(MockHandler[queries.ListPackageSizesQuery, []queries.PackageSizeView]),
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         m.createOrder,
		UpdateOrder:         m.updateOrder,
		UpdateProfile:       m.updateProfile,
		ListOrders:          m.listOrders,
		ListAvailableOrders: m.listAvailable,
		GetOrder:            m.getOrder,
		GetOrderChat:        m.getOrderChat,
		ListChats:           m.listChats,
		ListStatuses:        m.listStatuses,
		ListCities:          m.listCities,
		ListPackageSizes:    m.listPackageSizes,
	}, zap.NewNop())

	ja := httpadapter.NewTokenAuth(testSecret)
	users := fakeUsers{11: clientActor, 21: courierActor, 1: staffActor}

	e := echo.New()
	doc, err := httpadapter.LoadOpenAPI(context.Background())
	require.NoError(t, err)
	require.NoError(t, httpadapter.RegisterRoutes(e, server, httpadapter.Authenticate(ja, users, zap.NewNop()), doc))

	return &testAPI{t: t, echo: e, auth: ja, mocks: m}
}

func (a *testAPI) token(sub string) string {
	a.t.Helper()
	_, token, err := a.auth.Encode(map[string]any{"sub": sub})
	require.NoError(a.t, err)
	return token
}

// do sends a request as the user with id sub; an empty sub sends no token.
func (a *testAPI) do(method, path, sub, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sub != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token(sub))
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sampleView(courier bool) queries.OrderView {
	pickedUp := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	v := queries.OrderView{
		ID:                  100,
		Code:                "AB12CD34EF56",
		Client:              queries.ProfileView{ID: 11, FullName: "Aigerim Sarsenova", Phone: "+77010000001"},
		Status:              queries.StatusView{ID: 1, Code: order.Processing, Name: "Обработка", OrderIndex: 1},
		OriginCity:          queries.CityView{ID: 1, Name: "Алматы"},
		DestinationCity:     queries.CityView{ID: 2, Name: "Астана"},
		PickupAddress:       "Abay ave 10",
		DeliveryAddress:     "Dostyk st 5",
		PickupDate:          time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		PickupTimeSlot:      "10:00-12:00",
		RecipientName:       "Nurlan",
		RecipientPhone:      "+77017654321",
		SenderNameSnapshot:  "Aigerim Sarsenova",
		SenderPhoneSnapshot: "+77010000001",
		Price:               decimal.RequireFromString("1500"),
		CreatedAt:           time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}
	if courier {
		v.Courier = &queries.ProfileView{ID: 21, FullName: "Daniyar Abenov"}
		v.Status = queries.StatusView{ID: 2, Code: order.InTransit, Name: "В пути", OrderIndex: 2}
		v.PickupTimestamp = &pickedUp
	}
	return v
}
