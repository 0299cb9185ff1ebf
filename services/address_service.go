package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type CreateAddressRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	City        string `json:"city" binding:"required,min=1,max=100"`
	District    string `json:"district" binding:"required,min=1,max=100"`
	FullAddress string `json:"full_address" binding:"required"`
	PostalCode  string `json:"postal_code" binding:"required,max=20"`
}

type AddressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) List(ctx context.Context, user *models.User) ([]models.Address, *ServiceError) {
	addresses, err := s.addressRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, NewInternalError("Failed to fetch addresses")
	}
	return addresses, nil
}

func (s *AddressService) Create(ctx context.Context, user *models.User, req *CreateAddressRequest) (*models.Address, *ServiceError) {
	address := &models.Address{
		UserID:      user.ID,
		Title:       req.Title,
		City:        req.City,
		District:    req.District,
		FullAddress: req.FullAddress,
		PostalCode:  req.PostalCode,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, NewInternalError("Failed to create address")
	}
	return address, nil
}

// Delete removes an address the caller owns. An address owned by someone
// else is reported as missing, not forbidden.
func (s *AddressService) Delete(ctx context.Context, user *models.User, id uuid.UUID) *ServiceError {
	address, err := s.addressRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("Address not found")
	}
	if err != nil {
		return NewInternalError("Failed to delete address")
	}
	if address.UserID != user.ID {
		return NewNotFoundError("Address not found")
	}
	if err := s.addressRepo.Delete(ctx, address); err != nil {
		return NewInternalError("Failed to delete address")
	}
	return nil
}
