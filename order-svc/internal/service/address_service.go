package service

import (
	"context"
	"strings"

	"overcooked-delivery/order-svc/internal/domain"
)

type AddressService struct {
	store AddressStore
}

func NewAddressService(store AddressStore) *AddressService {
	return &AddressService{store: store}
}

// Add saves a delivery address for userID. Every field is required.
func (s *AddressService) Add(ctx context.Context, userID int, req domain.AddressRequest) (*domain.Address, error) {
	address := &domain.Address{
		UserID:  userID,
		Line1:   strings.TrimSpace(req.Line1),
		City:    strings.TrimSpace(req.City),
		State:   strings.TrimSpace(req.State),
		Pincode: strings.TrimSpace(req.Pincode),
	}
	if address.Line1 == "" || address.City == "" || address.State == "" || address.Pincode == "" {
		return nil, validationError("address_line1, city, state and pincode are required")
	}
	if err := s.store.AddAddress(ctx, address); err != nil {
		return nil, storageError("add address", err)
	}
	return address, nil
}

func (s *AddressService) List(ctx context.Context, userID int) ([]domain.Address, error) {
	addresses, err := s.store.ListAddresses(ctx, userID)
	if err != nil {
		return nil, storageError("list addresses", err)
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	return addresses, nil
}
