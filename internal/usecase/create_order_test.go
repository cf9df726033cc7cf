package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

func newTestOrderCreator(gw ERPGateway) *OrderCreator {
	c := NewOrderCreator(gw, zap.NewNop())
	c.Now = func() time.Time { return time.Date(2030, 5, 6, 7, 8, 9, 0, time.UTC) }
	return c
}

func TestCreateOrderSuccess(t *testing.T) {
	ctx := context.Background()
	product := entity.Product{ID: 5, Name: "Europe 1GB [EU]", ListPrice: 4.5}

	gw := new(MockERPGateway)
	gw.On("FindOrderByRef", ctx, "ORD-1").Return(int64(0), nil)
	gw.On("CreateOrder", ctx, entity.SaleOrder{
		PartnerID:      42,
		ClientOrderRef: "ORD-1",
		DateOrder:      "2024-03-01 08:00:00",
	}).Return(int64(900), nil)
	gw.On("CreateOrderLine", ctx, entity.SaleOrderLine{
		OrderID:   900,
		ProductID: 5,
		Quantity:  1,
		PriceUnit: 4.5,
		Name:      "Europe 1GB [EU]",
	}).Return(int64(901), nil)

	id, isNew, err := newTestOrderCreator(gw).Create(ctx, 42, product, "ORD-1", "2024-03-01T10:00:00+02:00")

	assert.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, int64(900), id)
	gw.AssertExpectations(t)
}

func TestCreateOrderAlreadyExists(t *testing.T) {
	ctx := context.Background()
	gw := new(MockERPGateway)
	gw.On("FindOrderByRef", ctx, "ORD-1").Return(int64(900), nil)

	id, isNew, err := newTestOrderCreator(gw).Create(ctx, 42, entity.Product{ID: 5}, "ORD-1", "")

	assert.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, int64(900), id)
	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderFallbackDate(t *testing.T) {
	ctx := context.Background()
	gw := new(MockERPGateway)
	gw.On("FindOrderByRef", ctx, "ORD-2").Return(int64(0), nil)
	gw.On("CreateOrder", ctx, mock.MatchedBy(func(o entity.SaleOrder) bool {
		return o.DateOrder == "2030-05-06 07:08:09"
	})).Return(int64(10), nil)
	gw.On("CreateOrderLine", ctx, mock.Anything).Return(int64(11), nil)

	_, isNew, err := newTestOrderCreator(gw).Create(ctx, 1, entity.Product{ID: 5}, "ORD-2", "not-a-date")

	assert.NoError(t, err)
	assert.True(t, isNew)
	gw.AssertExpectations(t)
}

func TestCreateOrderLineFailure(t *testing.T) {
	ctx := context.Background()
	gw := new(MockERPGateway)
	gw.On("FindOrderByRef", ctx, "ORD-3").Return(int64(0), nil)
	gw.On("CreateOrder", ctx, mock.Anything).Return(int64(20), nil)
	gw.On("CreateOrderLine", ctx, mock.Anything).Return(int64(0), errors.New("Fault: product archived"))

	id, isNew, err := newTestOrderCreator(gw).Create(ctx, 1, entity.Product{ID: 5}, "ORD-3", "")

	assert.Zero(t, id)
	assert.False(t, isNew)
	assert.True(t, IsTechnicalError(err))
}

func TestCreateOrderDuplicateCheckFailure(t *testing.T) {
	ctx := context.Background()
	gw := new(MockERPGateway)
	gw.On("FindOrderByRef", ctx, "ORD-4").Return(int64(0), errors.New("connection reset"))

	_, _, err := newTestOrderCreator(gw).Create(ctx, 1, entity.Product{ID: 5}, "ORD-4", "")

	assert.Error(t, err)
	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}
