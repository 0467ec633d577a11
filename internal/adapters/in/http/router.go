package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

const basePath = "/api/v1"

// RegisterRoutes mounts the API under /api/v1. Reference data and the API
// documents are public, everything else requires auth.
func RegisterRoutes(e *echo.Echo, s *Server, auth echo.MiddlewareFunc, doc *openapi3.T) error {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	public := e.Group(basePath)
	if err := registerDocs(public, doc); err != nil {
		return err
	}
	public.GET("/orders/statuses", s.ListOrderStatuses)
	public.GET("/core/cities", s.ListCities)
	public.GET("/core/package-sizes", s.ListPackageSizes)

	secured := e.Group(basePath, auth)
	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders", s.ListOrders)
	secured.GET("/orders/available", s.ListAvailableOrders)
	secured.GET("/orders/:id", s.GetOrder)
	secured.PATCH("/orders/:id", s.UpdateOrder)
	secured.GET("/orders/:id/chat", s.GetOrderChat)
	secured.GET("/chats", s.ListChats)
	secured.GET("/users/me", s.GetMe)
	secured.PATCH("/users/me", s.UpdateMe)

	return nil
}
