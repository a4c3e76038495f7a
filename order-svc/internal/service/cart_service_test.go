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

func strPtr(s string) *string { return &s }

var (
	margherita = domain.CartLine{ItemID: 1, Name: "Margherita", Price: 299, Quantity: 2}
	pepperoni  = domain.CartLine{ItemID: 2, Name: "Pepperoni", Price: 399, Quantity: 1}
)

func TestCartService_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		req       domain.AddItemRequest
		setupMock func(*mocks.CatalogReader, *mocks.UnitOfWork, *mocks.LedgerTx, *mocks.CartRepository)
		wantErr   error
		wantTotal int64
	}{
		{
			name:      "zero quantity",
			req:       domain.AddItemRequest{RestaurantID: 1, ItemID: 1, Quantity: 0},
			setupMock: func(*mocks.CatalogReader, *mocks.UnitOfWork, *mocks.LedgerTx, *mocks.CartRepository) {},
			wantErr:   service.ErrValidation,
		},
		{
			name:      "missing item id",
			req:       domain.AddItemRequest{RestaurantID: 1, Quantity: 1},
			setupMock: func(*mocks.CatalogReader, *mocks.UnitOfWork, *mocks.LedgerTx, *mocks.CartRepository) {},
			wantErr:   service.ErrValidation,
		},
		{
			name: "unknown menu item",
			req:  domain.AddItemRequest{RestaurantID: 1, ItemID: 99, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, _ *mocks.UnitOfWork, _ *mocks.LedgerTx, _ *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 99).Return(nil, nil).Once()
			},
			wantErr: service.ErrNotFound,
		},
		{
			name: "item from another restaurant",
			req:  domain.AddItemRequest{RestaurantID: 2, ItemID: 1, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, _ *mocks.UnitOfWork, _ *mocks.LedgerTx, _ *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 1).Return(&domain.MenuItem{ID: 1, RestaurantID: 1}, nil).Once()
			},
			wantErr: service.ErrValidation,
		},
		{
			name: "first item creates the cart",
			req:  domain.AddItemRequest{RestaurantID: 1, ItemID: 1, Quantity: 2, SpecialInstructions: strPtr("  ")},
			setupMock: func(c *mocks.CatalogReader, u *mocks.UnitOfWork, tx *mocks.LedgerTx, r *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 1).Return(&domain.MenuItem{ID: 1, RestaurantID: 1, Price: 299}, nil).Once()
				u.On("Begin", mock.Anything).Return(tx, nil).Once()
				tx.On("LockOrCreateCart", mock.Anything, 42, 1).Return(&domain.Cart{ID: 5, UserID: 42, RestaurantID: 1}, nil).Once()
				tx.On("UpsertLine", mock.Anything, 5, 1, 2, (*string)(nil)).Return(nil).Once()
				tx.On("Commit").Return(nil).Once()
				tx.On("Rollback").Return(nil).Once()
				r.On("CartLines", mock.Anything, 5).Return([]domain.CartLine{margherita}, nil).Once()
			},
			wantTotal: 598,
		},
		{
			name: "same item again merges",
			req:  domain.AddItemRequest{RestaurantID: 1, ItemID: 2, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, u *mocks.UnitOfWork, tx *mocks.LedgerTx, r *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 2).Return(&domain.MenuItem{ID: 2, RestaurantID: 1, Price: 399}, nil).Once()
				u.On("Begin", mock.Anything).Return(tx, nil).Once()
				tx.On("LockOrCreateCart", mock.Anything, 42, 1).Return(&domain.Cart{ID: 5, UserID: 42, RestaurantID: 1}, nil).Once()
				tx.On("UpsertLine", mock.Anything, 5, 2, 1, (*string)(nil)).Return(nil).Once()
				tx.On("Commit").Return(nil).Once()
				tx.On("Rollback").Return(nil).Once()
				r.On("CartLines", mock.Anything, 5).Return([]domain.CartLine{margherita, pepperoni}, nil).Once()
			},
			wantTotal: 997,
		},
		{
			name: "other restaurant rebinds the locked cart",
			req:  domain.AddItemRequest{RestaurantID: 2, ItemID: 3, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, u *mocks.UnitOfWork, tx *mocks.LedgerTx, r *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 3).Return(&domain.MenuItem{ID: 3, RestaurantID: 2, Price: 250}, nil).Once()
				u.On("Begin", mock.Anything).Return(tx, nil).Once()
				tx.On("LockOrCreateCart", mock.Anything, 42, 2).Return(&domain.Cart{ID: 5, UserID: 42, RestaurantID: 1}, nil).Once()
				tx.On("RebindCart", mock.Anything, 5, 2).Return(nil).Once()
				tx.On("UpsertLine", mock.Anything, 5, 3, 1, (*string)(nil)).Return(nil).Once()
				tx.On("Commit").Return(nil).Once()
				tx.On("Rollback").Return(nil).Once()
				r.On("CartLines", mock.Anything, 5).Return([]domain.CartLine{{ItemID: 3, Name: "Paneer", Price: 250, Quantity: 1}}, nil).Once()
			},
			wantTotal: 250,
		},
		{
			name: "failed line write is not committed",
			req:  domain.AddItemRequest{RestaurantID: 2, ItemID: 3, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, u *mocks.UnitOfWork, tx *mocks.LedgerTx, _ *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 3).Return(&domain.MenuItem{ID: 3, RestaurantID: 2, Price: 250}, nil).Once()
				u.On("Begin", mock.Anything).Return(tx, nil).Once()
				tx.On("LockOrCreateCart", mock.Anything, 42, 2).Return(&domain.Cart{ID: 5, UserID: 42, RestaurantID: 1}, nil).Once()
				tx.On("RebindCart", mock.Anything, 5, 2).Return(nil).Once()
				tx.On("UpsertLine", mock.Anything, 5, 3, 1, (*string)(nil)).Return(assert.AnError).Once()
				tx.On("Rollback").Return(nil).Once()
			},
			wantErr: service.ErrStorage,
		},
		{
			name: "lock failure",
			req:  domain.AddItemRequest{RestaurantID: 1, ItemID: 1, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, u *mocks.UnitOfWork, tx *mocks.LedgerTx, _ *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 1).Return(&domain.MenuItem{ID: 1, RestaurantID: 1}, nil).Once()
				u.On("Begin", mock.Anything).Return(tx, nil).Once()
				tx.On("LockOrCreateCart", mock.Anything, 42, 1).Return(nil, assert.AnError).Once()
				tx.On("Rollback").Return(nil).Once()
			},
			wantErr: service.ErrStorage,
		},
		{
			name: "database error",
			req:  domain.AddItemRequest{RestaurantID: 1, ItemID: 1, Quantity: 1},
			setupMock: func(c *mocks.CatalogReader, _ *mocks.UnitOfWork, _ *mocks.LedgerTx, _ *mocks.CartRepository) {
				c.On("GetMenuItem", mock.Anything, 1).Return(nil, assert.AnError).Once()
			},
			wantErr: service.ErrStorage,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCartRepository(t)
			catalog := mocks.NewCatalogReader(t)
			uow := mocks.NewUnitOfWork(t)
			tx := mocks.NewLedgerTx(t)
			testCase.setupMock(catalog, uow, tx, repo)
			svc := service.NewCartService(repo, catalog, uow)

			view, err := svc.AddItem(context.Background(), 42, testCase.req)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantTotal, view.CartTotal)
			assert.Equal(t, testCase.req.RestaurantID, view.RestaurantID)
		})
	}
}

func TestCartService_AddItemKeepsInstructions(t *testing.T) {
	repo := mocks.NewCartRepository(t)
	catalog := mocks.NewCatalogReader(t)
	uow := mocks.NewUnitOfWork(t)
	tx := mocks.NewLedgerTx(t)
	catalog.On("GetMenuItem", mock.Anything, 1).Return(&domain.MenuItem{ID: 1, RestaurantID: 1}, nil).Once()
	uow.On("Begin", mock.Anything).Return(tx, nil).Once()
	tx.On("LockOrCreateCart", mock.Anything, 42, 1).Return(&domain.Cart{ID: 5, RestaurantID: 1}, nil).Once()
	tx.On("UpsertLine", mock.Anything, 5, 1, 1, mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == "extra cheese"
	})).Return(nil).Once()
	tx.On("Commit").Return(nil).Once()
	tx.On("Rollback").Return(nil).Once()
	repo.On("CartLines", mock.Anything, 5).Return([]domain.CartLine{}, nil).Once()

	_, err := service.NewCartService(repo, catalog, uow).AddItem(context.Background(), 42,
		domain.AddItemRequest{RestaurantID: 1, ItemID: 1, Quantity: 1, SpecialInstructions: strPtr(" extra cheese ")})

	assert.NoError(t, err)
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("no cart is empty", func(t *testing.T) {
		repo := mocks.NewCartRepository(t)
		repo.On("GetCart", mock.Anything, 42).Return(nil, nil).Once()

		view, err := service.NewCartService(repo, mocks.NewCatalogReader(t), mocks.NewUnitOfWork(t)).GetCart(context.Background(), 42)

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Zero(t, view.CartTotal)
		assert.Zero(t, view.ItemCount)
	})

	t.Run("totals are computed from lines", func(t *testing.T) {
		repo := mocks.NewCartRepository(t)
		repo.On("GetCart", mock.Anything, 42).Return(&domain.Cart{ID: 5, RestaurantID: 1}, nil).Once()
		repo.On("CartLines", mock.Anything, 5).Return([]domain.CartLine{margherita, pepperoni}, nil).Once()

		view, err := service.NewCartService(repo, mocks.NewCatalogReader(t), mocks.NewUnitOfWork(t)).GetCart(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(997), view.CartTotal)
		assert.Equal(t, 3, view.ItemCount)
		assert.Equal(t, int64(598), view.Items[0].LineTotal)
	})
}

func TestCartService_UpdateLine(t *testing.T) {
	tests := []struct {
		name      string
		itemID    int
		quantity  int
		setupMock func(*mocks.CartRepository)
		wantErr   error
	}{
		{
			name:      "negative quantity",
			itemID:    1,
			quantity:  -1,
			setupMock: func(*mocks.CartRepository) {},
			wantErr:   service.ErrValidation,
		},
		{
			name:     "sets quantity",
			itemID:   1,
			quantity: 3,
			setupMock: func(r *mocks.CartRepository) {
				r.On("GetCart", mock.Anything, 42).Return(&domain.Cart{ID: 5}, nil).Once()
				r.On("SetLineQuantity", mock.Anything, 5, 1, 3).Return(int64(1), nil).Once()
			},
		},
		{
			name:     "missing line",
			itemID:   9,
			quantity: 3,
			setupMock: func(r *mocks.CartRepository) {
				r.On("GetCart", mock.Anything, 42).Return(&domain.Cart{ID: 5}, nil).Once()
				r.On("SetLineQuantity", mock.Anything, 5, 9, 3).Return(int64(0), nil).Once()
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:     "no cart",
			itemID:   1,
			quantity: 3,
			setupMock: func(r *mocks.CartRepository) {
				r.On("GetCart", mock.Anything, 42).Return(nil, nil).Once()
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:     "zero removes the line",
			itemID:   1,
			quantity: 0,
			setupMock: func(r *mocks.CartRepository) {
				r.On("GetCart", mock.Anything, 42).Return(&domain.Cart{ID: 5}, nil).Once()
				r.On("DeleteLine", mock.Anything, 5, 1).Return(int64(0), nil).Once()
			},
		},
		{
			name:     "zero without a cart succeeds",
			itemID:   1,
			quantity: 0,
			setupMock: func(r *mocks.CartRepository) {
				r.On("GetCart", mock.Anything, 42).Return(nil, nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewCartRepository(t)
			testCase.setupMock(repo)

			err := service.NewCartService(repo, mocks.NewCatalogReader(t), mocks.NewUnitOfWork(t)).UpdateLine(context.Background(), 42, testCase.itemID, testCase.quantity)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCartService_RemoveAndClearAreIdempotent(t *testing.T) {
	repo := mocks.NewCartRepository(t)
	repo.On("GetCart", mock.Anything, 42).Return(&domain.Cart{ID: 5}, nil).Times(3)
	repo.On("DeleteLine", mock.Anything, 5, 1).Return(int64(1), nil).Once()
	repo.On("ClearLines", mock.Anything, 5).Return(int64(2), nil).Once()
	repo.On("ClearLines", mock.Anything, 5).Return(int64(0), nil).Once()
	svc := service.NewCartService(repo, mocks.NewCatalogReader(t), mocks.NewUnitOfWork(t))
	ctx := context.Background()

	removed, err := svc.RemoveLine(ctx, 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	cleared, err := svc.Clear(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	cleared, err = svc.Clear(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cleared)
}

func TestCartService_ClearWithoutCart(t *testing.T) {
	repo := mocks.NewCartRepository(t)
	repo.On("GetCart", mock.Anything, 42).Return(nil, nil).Once()

	cleared, err := service.NewCartService(repo, mocks.NewCatalogReader(t), mocks.NewUnitOfWork(t)).Clear(context.Background(), 42)

	require.NoError(t, err)
	assert.Zero(t, cleared)
}
