package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/xavierca1/odoo-sync/internal/entity"
)

// Client lê tabelas pela API REST do Supabase (PostgREST). Sem filtro e sem paginação.
type Client struct {
	baseURL       string
	apiKey        string
	packagesTable string
	ordersTable   string
	http          *http.Client
}

func NewClient(baseURL, apiKey, packagesTable, ordersTable string) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		packagesTable: packagesTable,
		ordersTable:   ordersTable,
		http:          &http.Client{}, // sem timeout: a tabela vem inteira, quem limita é o ctx
	}
}

func (c *Client) ListPackages(ctx context.Context) ([]entity.PackageRow, error) {
	var rows []entity.PackageRow
	if err := c.selectAll(ctx, c.packagesTable, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]entity.OrderRow, error) {
	var rows []entity.OrderRow
	if err := c.selectAll(ctx, c.ordersTable, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// selectAll equivale a "select * from <table>"
func (c *Client) selectAll(ctx context.Context, table string, out interface{}) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?select=*", c.baseURL, url.PathEscape(table))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request supabase: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("supabase recusou leitura de %s (status %d): %s", table, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro decode supabase (%s): %w", table, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "OdooSync/1.0")
}
