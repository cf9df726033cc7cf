package odoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/kolo/xmlrpc"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"
)

const (
	commonPath = "/xmlrpc/2/common"
	objectPath = "/xmlrpc/2/object"
)

var ErrAuthenticationFailed = errors.New("autenticação no Odoo recusada")

type Config struct {
	URL      string
	DB       string
	User     string
	Password string

	// MaxRPS limita as chamadas execute_kw por segundo. Zero = sem limite.
	MaxRPS float64

	// Transport é opcional (nil usa o http.DefaultTransport).
	Transport http.RoundTripper
}

// Client fala XML-RPC com o Odoo já autenticado. Uso sequencial.
type Client struct {
	db       string
	password string
	uid      int64

	common    *xmlrpc.Client
	object    *xmlrpc.Client
	transport *ctxTransport
	limiter   *rate.Limiter
}

// Dial autentica e devolve o client pronto. Sem retry: falhou aqui, o job aborta.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	transport := newCtxTransport(cfg.Transport)

	common, err := xmlrpc.NewClient(cfg.URL+commonPath, transport)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no Odoo: %w", err)
	}

	var reply interface{}
	params := []interface{}{cfg.DB, cfg.User, cfg.Password, map[string]interface{}{}}
	release := transport.bind(ctx)
	err = common.Call("authenticate", params, &reply)
	release()
	if err != nil {
		common.Close()
		return nil, fmt.Errorf("falha ao conectar no Odoo: %w", callError(ctx, err))
	}

	// Odoo responde false quando usuário/senha não batem
	uid, ok := reply.(int64)
	if !ok || uid <= 0 {
		common.Close()
		return nil, ErrAuthenticationFailed
	}

	object, err := xmlrpc.NewClient(cfg.URL+objectPath, transport)
	if err != nil {
		common.Close()
		return nil, fmt.Errorf("falha ao conectar no Odoo: %w", err)
	}

	limit := rate.Inf
	if cfg.MaxRPS > 0 {
		limit = rate.Limit(cfg.MaxRPS)
	}

	return &Client{
		db:        cfg.DB,
		password:  cfg.Password,
		uid:       uid,
		common:    common,
		object:    object,
		transport: transport,
		limiter:   rate.NewLimiter(limit, 1),
	}, nil
}

func (c *Client) UID() int64 {
	return c.uid
}

// ExecuteKw chama model.method(*args, **kwargs) e decodifica a resposta em reply.
func (c *Client) ExecuteKw(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if kwargs == nil {
		kwargs = map[string]interface{}{}
	}

	params := []interface{}{c.db, c.uid, c.password, model, method, args, kwargs}
	release := c.transport.bind(ctx)
	defer release()

	if err := c.object.Call("execute_kw", params, reply); err != nil {
		return fmt.Errorf("%s.%s: %w", model, method, callError(ctx, err))
	}
	return nil
}

// callError: chamada interrompida pelo contexto vira o erro do contexto, para o chamador
// reconhecer o cancelamento com errors.Is.
func callError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

func (c *Client) Close() error {
	return multierr.Combine(c.common.Close(), c.object.Close())
}
