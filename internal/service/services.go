package service

import (
	"github.com/littlelemon/restaurant-server/internal/logger"
	"github.com/littlelemon/restaurant-server/internal/store"
)

type Services struct {
	AuthService    AuthService
	MenuService    MenuService
	BookingService BookingService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRepository, logger),
		MenuService:    NewMenuService(storages.MenuRepository, logger),
		BookingService: NewBookingService(storages.BookingRepository, logger),
	}
}
