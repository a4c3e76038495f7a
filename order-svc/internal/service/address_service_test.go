package service_test

import (
	"context"
	"testing"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/mocks"
	"overcooked-delivery/order-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_Add(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.AddressRequest
		setupMock func(*mocks.AddressStore)
		wantErr   error
	}{
		{
			name:      "missing city",
			req:       domain.AddressRequest{Line1: "1 Main St", State: "MH", Pincode: "400001"},
			setupMock: func(*mocks.AddressStore) {},
			wantErr:   service.ErrValidation,
		},
		{
			name:      "blank line",
			req:       domain.AddressRequest{Line1: "   ", City: "Mumbai", State: "MH", Pincode: "400001"},
			setupMock: func(*mocks.AddressStore) {},
			wantErr:   service.ErrValidation,
		},
		{
			name: "stored with trimmed fields",
			req:  domain.AddressRequest{Line1: " 1 Main St ", City: "Mumbai", State: "MH", Pincode: "400001"},
			setupMock: func(s *mocks.AddressStore) {
				s.On("AddAddress", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
					return a.UserID == 42 && a.Line1 == "1 Main St"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Address).ID = 7
				}).Return(nil).Once()
			},
		},
		{
			name: "database error",
			req:  domain.AddressRequest{Line1: "1 Main St", City: "Mumbai", State: "MH", Pincode: "400001"},
			setupMock: func(s *mocks.AddressStore) {
				s.On("AddAddress", mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantErr: service.ErrStorage,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewAddressStore(t)
			testCase.setupMock(store)

			address, err := service.NewAddressService(store).Add(context.Background(), 42, testCase.req)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, address)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, address.ID)
			assert.Equal(t, 42, address.UserID)
		})
	}
}

func TestAddressService_ListEmpty(t *testing.T) {
	store := mocks.NewAddressStore(t)
	store.On("ListAddresses", mock.Anything, 42).Return(nil, nil).Once()

	addresses, err := service.NewAddressService(store).List(context.Background(), 42)

	require.NoError(t, err)
	assert.NotNil(t, addresses)
	assert.Empty(t, addresses)
}
