package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Depois do primeiro sinal o handler sai: um segundo Ctrl-C mata o processo na hora
	go func() {
		<-ctx.Done()
		stop()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	code := exitCode(ctx, err, os.Stderr)
	stop()

	os.Exit(code)
}

// exitCode: interrupção sai com 130 e sem stack trace, qualquer outro erro com 1.
func exitCode(ctx context.Context, err error, out io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(out, "⏹️ Operação interrompida pelo usuário")
		return exitInterrupted
	}
	fmt.Fprintf(out, "💥 Operação falhou: %v\n", err)
	return exitFailure
}
