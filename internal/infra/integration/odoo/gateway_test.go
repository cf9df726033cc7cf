package odoo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

type call struct {
	model  string
	method string
	args   []interface{}
	kwargs map[string]interface{}
}

// fakeExecutor grava as chamadas e devolve respostas prontas por model.method
type fakeExecutor struct {
	calls     []call
	rows      map[string][]map[string]interface{}
	ids       map[string][]int64
	createdID int64
	err       error
}

func (f *fakeExecutor) ExecuteKw(_ context.Context, model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error {
	f.calls = append(f.calls, call{model, method, args, kwargs})
	if f.err != nil {
		return f.err
	}
	switch r := reply.(type) {
	case *[]map[string]interface{}:
		*r = f.rows[model]
	case *[]int64:
		*r = f.ids[model]
	case *int64:
		*r = f.createdID
	}
	return nil
}

func (f *fakeExecutor) last() call {
	return f.calls[len(f.calls)-1]
}

// TestFindPartnerByEmailExact - padrão é =ilike com curingas escapados
func TestFindPartnerByEmailExact(t *testing.T) {
	exec := &fakeExecutor{rows: map[string][]map[string]interface{}{
		ModelPartner: {{"id": int64(12)}},
	}}
	gw := NewGateway(exec, PartnerMatchExact)

	id, err := gw.FindPartnerByEmail(context.Background(), "john_doe@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	c := exec.last()
	assert.Equal(t, ModelPartner, c.model)
	assert.Equal(t, MethodSearchRead, c.method)
	want := []interface{}{Where(Cond("email", "=ilike", `john\_doe@example.com`))}
	if diff := cmp.Diff(want, c.args); diff != "" {
		t.Errorf("domain diferente (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"id"}, c.kwargs["fields"])
	assert.Equal(t, 1, c.kwargs["limit"])
}

func TestFindPartnerByEmailPartial(t *testing.T) {
	exec := &fakeExecutor{}
	gw := NewGateway(exec, PartnerMatchPartial)

	id, err := gw.FindPartnerByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Zero(t, id)

	want := []interface{}{Where(Cond("email", "ilike", "john@example.com"))}
	assert.Empty(t, cmp.Diff(want, exec.last().args))
}

// TestFindProductByCodeHandlesFalse - Odoo manda false em campo vazio
func TestFindProductByCodeHandlesFalse(t *testing.T) {
	exec := &fakeExecutor{rows: map[string][]map[string]interface{}{
		ModelProduct: {{"id": int64(7), "name": false, "list_price": 4.5}},
	}}
	gw := NewGateway(exec, PartnerMatchExact)

	p, err := gw.FindProductByCode(context.Background(), "PKG1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, 4.5, p.ListPrice)
}

func TestFindProductByCodeNotFound(t *testing.T) {
	gw := NewGateway(&fakeExecutor{}, PartnerMatchExact)

	p, err := gw.FindProductByCode(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductExistsUsesSearch(t *testing.T) {
	exec := &fakeExecutor{ids: map[string][]int64{ModelProduct: {3}}}
	gw := NewGateway(exec, PartnerMatchExact)

	ok, err := gw.ProductExists(context.Background(), "PKG1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, MethodSearch, exec.last().method)
	assert.Equal(t, map[string]interface{}{"limit": 1}, exec.last().kwargs)
}

func TestCreateProductValues(t *testing.T) {
	exec := &fakeExecutor{createdID: 99}
	gw := NewGateway(exec, PartnerMatchExact)

	id, err := gw.CreateProduct(context.Background(), entity.ProductTemplate{
		Name:        "1GB Europe [EU]",
		DefaultCode: "PKG1",
		ListPrice:   decimal.RequireFromString("4.5"),
		Type:        entity.ProductTypeService,
		SaleOK:      true,
		Description: "1 GB pour 7 jours\nRégion : EU",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)

	values := exec.last().args[0].(map[string]interface{})
	assert.Equal(t, 4.5, values["list_price"])
	assert.Equal(t, "service", values["type"])
	assert.Equal(t, true, values["sale_ok"])
	assert.Equal(t, false, values["purchase_ok"])
	assert.Equal(t, "PKG1", values["default_code"])
}

func TestCreateOrderLineValues(t *testing.T) {
	exec := &fakeExecutor{createdID: 5}
	gw := NewGateway(exec, PartnerMatchExact)

	_, err := gw.CreateOrderLine(context.Background(), entity.NewSaleOrderLine(42, entity.Product{ID: 7, Name: "X", ListPrice: 9.9}))
	require.NoError(t, err)

	c := exec.last()
	assert.Equal(t, ModelOrderLine, c.model)
	values := c.args[0].(map[string]interface{})
	assert.Equal(t, int64(42), values["order_id"])
	assert.Equal(t, float64(1), values["product_uom_qty"])
	assert.Equal(t, 9.9, values["price_unit"])
}

func TestGatewayPropagatesErrors(t *testing.T) {
	gw := NewGateway(&fakeExecutor{err: errors.New("Fault 2: access denied")}, PartnerMatchExact)

	_, err := gw.OrderExists(context.Background(), "ORD-1")
	assert.Error(t, err)
	_, err = gw.FindOrderByRef(context.Background(), "ORD-1")
	assert.Error(t, err)
	_, err = gw.CreateOrder(context.Background(), entity.SaleOrder{PartnerID: 1})
	assert.Error(t, err)
}

func entityPartner(email string) entity.Partner {
	return entity.NewPartner(email, "")
}
