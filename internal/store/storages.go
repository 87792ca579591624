package store

import (
	"github.com/littlelemon/restaurant-server/internal/logger"
)

type Storages struct {
	UserRepository    UserRepository
	TokenRepository   TokenRepository
	MenuRepository    MenuRepository
	BookingRepository BookingRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
		MenuRepository:    NewMenuRepository(db, logger),
		BookingRepository: NewBookingRepository(db, logger),
	}
}
