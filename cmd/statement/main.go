// statement genera un estado de cuenta desde el almacenamiento configurado y lo escribe a disco.
//
// Uso:
//
//	go run ./cmd/statement -scope TODAY -format pdf -out ./out
//	go run ./cmd/statement -scope MONTHLY -month 2024-05 -format xlsx
//	go run ./cmd/statement -customer <id> -format pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jhoicas/carry-ledger-api/internal/application/dto"
	"github.com/jhoicas/carry-ledger-api/internal/application/reporting"
	"github.com/jhoicas/carry-ledger-api/internal/domain"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/excel"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/kvstore"
	infrapdf "github.com/jhoicas/carry-ledger-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carry-ledger-api/internal/infrastructure/storage"
	"github.com/jhoicas/carry-ledger-api/pkg/config"
	"github.com/jhoicas/carry-ledger-api/pkg/logger"
)

// Códigos de salida.
const (
	exitOK         = 0
	exitError      = 1
	exitBadInput   = 2
	exitEmptyScope = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run ejecuta el comando y devuelve el código de salida; los defer se cumplen antes de salir.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("statement", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var q dto.ReportQuery
	fs.StringVar(&q.Scope, "scope", "TODAY", "TODAY | MONTHLY | CUSTOMER | CATEGORY | TYPE | CUSTOM")
	fs.StringVar(&q.Month, "month", "", "YYYY-MM (MONTHLY)")
	fs.StringVar(&q.CustomerID, "customer-id", "", "cliente (CUSTOMER)")
	fs.StringVar(&q.Category, "category", "", "categoría (CATEGORY)")
	fs.StringVar(&q.Type, "type", "", "IN | OUT (TYPE)")
	fs.StringVar(&q.From, "from", "", "desde YYYY-MM-DD (CUSTOM)")
	fs.StringVar(&q.To, "to", "", "hasta YYYY-MM-DD (CUSTOM)")
	fs.StringVar(&q.Format, "format", "pdf", "pdf | xlsx")
	customerID := fs.String("customer", "", "estado de cuenta de un cliente (nombre de archivo SR_STMT_...)")
	outDir := fs.String("out", ".", "directorio de salida")
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	format, err := reporting.ParseFormat(q.Format)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitBadInput
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Cargar configuración: %v\n", err)
		return exitError
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := storage.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "Abrir almacenamiento: %v\n", err)
		return exitError
	}
	defer closeStore()

	repos := kvstore.NewRepositories(store, storage.Keyspace(cfg.Store), log)
	uc := reporting.NewStatementUseCase(
		repos.Movements, repos.Customers,
		infrapdf.NewMarotoPDFGenerator(), excel.NewStatementSheet(),
		reporting.Options{OrgName: cfg.Report.OrgName, OrgTag: cfg.Report.OrgTag, Location: cfg.Report.Location()},
		nil,
	)

	var file *dto.FileResult
	if *customerID != "" {
		file, err = uc.CustomerStatement(ctx, *customerID, format)
	} else {
		var scope reporting.Scope
		scope, err = reporting.ScopeFromQuery(q, uc.Now())
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return exitBadInput
		}
		file, err = uc.Export(ctx, scope, format)
	}
	if errors.Is(err, domain.ErrEmptyStatement) {
		fmt.Fprintln(stderr, "Sin movimientos para el alcance indicado; no se generó archivo")
		return exitEmptyScope
	}
	if err != nil {
		fmt.Fprintf(stderr, "Generar estado de cuenta: %v\n", err)
		return exitError
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(stderr, "Crear directorio: %v\n", err)
		return exitError
	}
	path := filepath.Join(*outDir, file.Filename)
	if err := os.WriteFile(path, file.Content, 0o644); err != nil {
		fmt.Fprintf(stderr, "Escribir %s: %v\n", path, err)
		return exitError
	}
	fmt.Fprintf(stdout, "Escrito %s (%d bytes)\n", path, len(file.Content))
	return exitOK
}
