package adaptor

import (
	"hotel-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Inventory *InventoryHandler
	Room      *RoomHandler
	Rate      *RateHandler
	Booking   *BookingHandler
	Payment   *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Inventory: NewInventoryHandler(service.Inventory, log),
		Room:      NewRoomHandler(service.Room, log),
		Rate:      NewRateHandler(service.Rate, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Payment:   NewPaymentHandler(service.Payment, log),
	}
}
