package services

import (
	"fmt"

	"gorm.io/gorm"

	"hotel-frontdesk/models"
)

// GuestService reads the append-only guest registry. Guests are created by
// the reservation flows, retained forever as historical records, and never
// edited here.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}
