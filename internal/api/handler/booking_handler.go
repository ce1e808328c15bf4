package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/servihub/booking-api/internal/api/metrics"
	"github.com/servihub/booking-api/internal/core/domain"
	"github.com/servihub/booking-api/internal/core/ports"
)

// BookingHandler serves the booking CRUD endpoints. Create, update and
// delete are deliberately unauthenticated, matching the public contract;
// only the owner-scoped listing requires a verified token.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /bookings. The body is stored as-is; no field of the
// booking payload is validated.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Booking document"
// @Success      200   {object}  insertResponse
// @Failure      500   {object}  map[string]string
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	doc := domain.Document{}
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	id, err := h.bookings.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, insertResponse{InsertedID: id})
}

// List handles GET /bookings?email=. The auth middleware has verified the
// token; the service enforces that the claimed email owns the listing.
//
// @Summary      List bookings by owner email
// @Tags         bookings
// @Produce      json
// @Security     CookieAuth
// @Param        email  query     string  true  "Owner email"
// @Success      200    {array}   map[string]any
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	docs, err := h.bookings.ListByEmail(c.Request().Context(), claims, c.QueryParam("email"))
	if err != nil {
		return err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return c.JSON(http.StatusOK, docs)
}

// UpdateStatus handles PATCH /bookings/:id.
//
// @Summary      Update a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  ports.UpdateResult
// @Failure      500   {object}  map[string]string
// @Router       /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	res, err := h.bookings.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.BookingStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /bookings/:id. Deleting an absent id reports a zero
// count, not an error.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  ports.DeleteResult
// @Failure      500  {object}  map[string]string
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	res, err := h.bookings.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
