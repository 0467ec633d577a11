package http

import (
	"context"
	"fmt"
	"net/http"

	"jibekjoly/internal/adapters/in/http/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// LoadOpenAPI parses and validates the embedded OpenAPI document.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// apiDoc feeds the document to the swagger UI through the swag registry.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

func registerDocs(g *echo.Group, doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}

	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, apiDoc{json: string(raw)})
	}

	g.GET("/docs/schema", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, raw)
	})
	g.GET("/docs/swagger-ui/*", echoSwagger.WrapHandler)
	return nil
}
