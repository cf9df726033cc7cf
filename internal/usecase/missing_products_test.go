package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// TestMissingProducts - cada package_id é consultado uma vez; vazio é ignorado
func TestMissingProducts(t *testing.T) {
	ctx := context.Background()
	source := new(MockSourceRepository)
	source.On("ListOrders", ctx).Return([]entity.OrderRow{
		{PackageID: "PKG2", OrderRef: "ORD-1"},
		{PackageID: "PKG1", OrderRef: "ORD-2"},
		{PackageID: " PKG2 ", OrderRef: "ORD-3"},
		{PackageID: "", OrderRef: "ORD-4"},
		{PackageID: "PKG3", OrderRef: "ORD-5"},
	}, nil)

	gw := new(MockERPGateway)
	gw.On("ProductExists", ctx, "PKG2").Return(false, nil).Once()
	gw.On("ProductExists", ctx, "PKG1").Return(true, nil).Once()
	gw.On("ProductExists", ctx, "PKG3").Return(false, nil).Once()

	missing, err := NewMissingProductsUseCase(source, gw, zap.NewNop()).Execute(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"PKG2", "PKG3"}, missing)
	gw.AssertExpectations(t)
	gw.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestMissingProductsAfterImport(t *testing.T) {
	erp := newFakeERP()
	erp.addProduct("PKG1", "1GB Europe [EU]", 4.5)
	source := staticSource{orders: []entity.OrderRow{{PackageID: "PKG1"}}}

	missing, err := NewMissingProductsUseCase(source, erp, zap.NewNop()).Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMissingProductsRemoteFailure(t *testing.T) {
	ctx := context.Background()
	source := new(MockSourceRepository)
	source.On("ListOrders", ctx).Return([]entity.OrderRow{{PackageID: "PKG1"}}, nil)
	gw := new(MockERPGateway)
	gw.On("ProductExists", ctx, "PKG1").Return(false, errors.New("timeout"))

	_, err := NewMissingProductsUseCase(source, gw, zap.NewNop()).Execute(ctx)

	assert.ErrorContains(t, err, "PKG1")
}
