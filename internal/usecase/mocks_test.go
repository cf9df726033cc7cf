package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/odoo-sync/internal/entity"
	"github.com/xavierca1/odoo-sync/internal/infra/queue"
)

// MockSourceRepository
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) ListPackages(ctx context.Context) ([]entity.PackageRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PackageRow), args.Error(1)
}

func (m *MockSourceRepository) ListOrders(ctx context.Context) ([]entity.OrderRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderRow), args.Error(1)
}

// MockERPGateway
type MockERPGateway struct {
	mock.Mock
}

func (m *MockERPGateway) FindPartnerByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockERPGateway) CreatePartner(ctx context.Context, p entity.Partner) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockERPGateway) FindProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockERPGateway) ProductExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockERPGateway) CreateProduct(ctx context.Context, tpl entity.ProductTemplate) (int64, error) {
	args := m.Called(ctx, tpl)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockERPGateway) FindOrderByRef(ctx context.Context, ref string) (int64, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockERPGateway) OrderExists(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *MockERPGateway) CreateOrder(ctx context.Context, o entity.SaleOrder) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockERPGateway) CreateOrderLine(ctx context.Context, l entity.SaleOrderLine) (int64, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishSyncEvent(ctx context.Context, event queue.SyncEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockMetricsRecorder
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) RecordRow(mode, status string) {
	m.Called(mode, status)
}

// fakeERP guarda o estado como o Odoo guardaria, para testar execuções repetidas.
type fakeERP struct {
	nextID int64

	partners map[string]int64
	products map[string]entity.Product
	orders   map[string]int64

	createdPartners []entity.Partner
	createdProducts []entity.ProductTemplate
	createdOrders   []entity.SaleOrder
	createdLines    []entity.SaleOrderLine

	failLineFor string
}

func newFakeERP() *fakeERP {
	return &fakeERP{
		nextID:   100,
		partners: map[string]int64{},
		products: map[string]entity.Product{},
		orders:   map[string]int64{},
	}
}

func (f *fakeERP) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeERP) addProduct(code, name string, price float64) entity.Product {
	p := entity.Product{ID: f.id(), Name: name, ListPrice: price}
	f.products[code] = p
	return p
}

func (f *fakeERP) FindPartnerByEmail(_ context.Context, email string) (int64, error) {
	return f.partners[strings.ToLower(email)], nil
}

func (f *fakeERP) CreatePartner(_ context.Context, p entity.Partner) (int64, error) {
	id := f.id()
	f.partners[p.Email] = id
	f.createdPartners = append(f.createdPartners, p)
	return id, nil
}

func (f *fakeERP) FindProductByCode(_ context.Context, code string) (*entity.Product, error) {
	p, ok := f.products[code]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeERP) ProductExists(_ context.Context, code string) (bool, error) {
	_, ok := f.products[code]
	return ok, nil
}

func (f *fakeERP) CreateProduct(_ context.Context, tpl entity.ProductTemplate) (int64, error) {
	price, _ := tpl.ListPrice.Float64()
	p := f.addProduct(tpl.DefaultCode, tpl.Name, price)
	f.createdProducts = append(f.createdProducts, tpl)
	return p.ID, nil
}

func (f *fakeERP) FindOrderByRef(_ context.Context, ref string) (int64, error) {
	return f.orders[ref], nil
}

func (f *fakeERP) OrderExists(_ context.Context, ref string) (bool, error) {
	_, ok := f.orders[ref]
	return ok, nil
}

func (f *fakeERP) CreateOrder(_ context.Context, o entity.SaleOrder) (int64, error) {
	id := f.id()
	f.orders[o.ClientOrderRef] = id
	f.createdOrders = append(f.createdOrders, o)
	return id, nil
}

func (f *fakeERP) CreateOrderLine(_ context.Context, l entity.SaleOrderLine) (int64, error) {
	if f.failLineFor != "" && l.Name == f.failLineFor {
		return 0, fmt.Errorf("Fault: invalid product")
	}
	f.createdLines = append(f.createdLines, l)
	return f.id(), nil
}

// staticSource devolve sempre as mesmas linhas.
type staticSource struct {
	packages []entity.PackageRow
	orders   []entity.OrderRow
}

func (s staticSource) ListPackages(context.Context) ([]entity.PackageRow, error) {
	return s.packages, nil
}

func (s staticSource) ListOrders(context.Context) ([]entity.OrderRow, error) {
	return s.orders, nil
}
