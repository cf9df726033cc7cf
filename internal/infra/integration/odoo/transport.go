package odoo

import (
	"context"
	"net/http"
	"sync"
)

// ctxTransport liga o contexto da chamada em andamento à requisição HTTP. O xmlrpc.Client não
// recebe context, então é por aqui que um Ctrl-C derruba uma chamada presa no Odoo.
type ctxTransport struct {
	base http.RoundTripper

	mu  sync.Mutex
	ctx context.Context
}

func newCtxTransport(base http.RoundTripper) *ctxTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &ctxTransport{base: base}
}

// bind vale até o release devolvido ser chamado. O Client é sequencial, um bind por vez.
func (t *ctxTransport) bind(ctx context.Context) (release func()) {
	t.mu.Lock()
	t.ctx = ctx
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		t.ctx = nil
		t.mu.Unlock()
	}
}

func (t *ctxTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	ctx := t.ctx
	t.mu.Unlock()

	if ctx != nil {
		req = req.WithContext(ctx)
	}
	return t.base.RoundTrip(req)
}
