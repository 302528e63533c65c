package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Inventory InventoryService
	Room      RoomService
	Rate      RateService
	Booking   BookingService
	Payment   PaymentService
}

// NewService wires every service. repo runs single statements against the pool;
// tx opens a transaction for the multi-step writes.
func NewService(repo *repository.Repository, tx repository.Transactor, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo.User, log),
		Inventory: NewInventoryService(repo, log),
		Room:      NewRoomService(repo, tx, log),
		Rate:      NewRateService(repo, config.Booking, log),
		Booking:   NewBookingService(repo, tx, config.Booking, log),
		Payment:   NewPaymentService(repo, tx, config.Booking, log),
	}
}
