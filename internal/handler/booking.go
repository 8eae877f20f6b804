package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/server"
	"github.com/homehero/homehero-server/internal/service"
)

// BookingHandler serves the booking routes.
type BookingHandler struct {
	Handler
	bookings *service.BookingService
}

func NewBookingHandler(s *server.Server, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Handler:  NewHandler(s),
		bookings: bookings,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context, req *CreateBookingRequest) (*model.Booking, error) {
	in := req.Booking()
	in.UID = callerFrom(c, in.UID, in.UserEmail).UID
	return h.bookings.Create(c.Request().Context(), in)
}

func (h *BookingHandler) ListBookings(c echo.Context, req *ListBookingsRequest) ([]model.Booking, error) {
	caller := callerFrom(c, req.UID, req.UserEmail)
	return h.bookings.List(c.Request().Context(), caller.UID, caller.Email)
}

func (h *BookingHandler) UpdateBooking(c echo.Context, req *UpdateBookingRequest) (*model.Ack, error) {
	return h.bookings.UpdateStatus(c.Request().Context(), req.ID, req.Status)
}

func (h *BookingHandler) DeleteBooking(c echo.Context, req *BookingIDRequest) (*model.Ack, error) {
	return h.bookings.Delete(c.Request().Context(), req.ID)
}
