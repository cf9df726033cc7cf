package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/xavierca1/odoo-sync/internal/infra/integration/odoo"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	for _, key := range []string{"ODOO_URL", "ODOO_DB", "ODOO_USER", "ODOO_PASSWORD"} {
		if os.Getenv(key) == "" {
			log.Fatalf("❌ %s deve estar configurado no .env", key)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println("🔄 Autenticando no Odoo...")
	client, err := odoo.Dial(ctx, odoo.Config{
		URL:      os.Getenv("ODOO_URL"),
		DB:       os.Getenv("ODOO_DB"),
		User:     os.Getenv("ODOO_USER"),
		Password: os.Getenv("ODOO_PASSWORD"),
	})
	if err != nil {
		log.Fatalf("Erro ao conectar no Odoo: %v", err)
	}
	defer client.Close()

	fmt.Printf("🔐 Autenticado! UID: %d\n\n", client.UID())

	gateway := odoo.NewGateway(client, odoo.PartnerMatchExact)
	models := []struct {
		label  string
		model  string
		domain odoo.Domain
	}{
		{"Parceiros", odoo.ModelPartner, odoo.Where()},
		{"Produtos (serviço)", odoo.ModelProduct, odoo.Where(odoo.Cond("type", "=", "service"))},
		{"Pedidos com referência", odoo.ModelOrder, odoo.Where(odoo.Cond("client_order_ref", "!=", false))},
	}

	for _, m := range models {
		n, err := gateway.Count(ctx, m.model, m.domain)
		if err != nil {
			log.Fatalf("Erro ao contar %s: %v", m.model, err)
		}
		fmt.Printf("   %s: %d\n", m.label, n)
	}
}
