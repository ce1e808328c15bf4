package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// CatalogHandler serves read access to the services collection.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /services.
//
// @Summary      List all services
// @Tags         services
// @Produce      json
// @Success      200  {array}   map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	docs, err := h.catalog.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return c.JSON(http.StatusOK, docs)
}

// Get handles GET /services/:id.
//
// @Summary      Get a service by id, projected to {id, title, img, price}
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	svc, err := h.catalog.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}
