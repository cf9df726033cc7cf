package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierca1/odoo-sync/internal/infra/worker"
	"github.com/xavierca1/odoo-sync/internal/usecase"
)

const everyFlag = "every"

// newRootCmd: sem argumento (ou com qualquer argumento que não seja "import") roda a
// sincronização de pedidos.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "odoo-sync [import]",
		Short:         "Sincroniza pacotes e pedidos Airalo do Supabase para o Odoo",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMode(cmd, usecase.ModeSync)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().Duration(everyFlag, 0, "repete a execução neste intervalo (ex.: 15m); 0 roda uma vez")

	root.AddCommand(
		&cobra.Command{
			Use:   usecase.ModeImport,
			Short: "Importa airalo_packages como product.product",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMode(cmd, usecase.ModeImport)
			},
		},
		&cobra.Command{
			Use:   usecase.ModeSync,
			Short: "Sincroniza airalo_orders como sale.order (padrão)",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMode(cmd, usecase.ModeSync)
			},
		},
		&cobra.Command{
			Use:   "missing-products",
			Short: "Lista os package_id dos pedidos que ainda não existem como produto",
			Args:  cobra.NoArgs,
			RunE:  runMissingProducts,
		},
	)

	return root
}

func runMode(cmd *cobra.Command, mode string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	every, err := cmd.Flags().GetDuration(everyFlag)
	if err != nil {
		return err
	}
	if every <= 0 {
		return a.run(ctx, mode)
	}

	return worker.NewScheduler(every, a.logger).Run(ctx, func(ctx context.Context) error {
		return a.run(ctx, mode)
	})
}

func runMissingProducts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	missing, err := usecase.NewMissingProductsUseCase(a.source, a.gateway, a.logger).Execute(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, code := range missing {
		fmt.Fprintln(out, code)
	}
	return nil
}
