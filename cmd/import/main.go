// Package main is the bulk import CLI: supplier XLSX stock sheets and
// customer CSV files.
//
// Usage:
//
//	import -file starts94.xlsx -provider starts94
//	import -file nalichnosti.xlsx -provider nalichnosti
//	import -file clients.csv -customers
//	import -file starts94.xlsx -provider starts94 -force
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"avtoservice/internal/config"
	"avtoservice/internal/core/types"
	"avtoservice/internal/domain/catalogs/customer"
	"avtoservice/internal/domain/catalogs/sklad"
	"avtoservice/internal/domain/imports"
	"avtoservice/internal/infrastructure/storage/postgres"
	"avtoservice/internal/infrastructure/storage/postgres/catalog_repo"
	"avtoservice/internal/infrastructure/storage/postgres/document_repo"
	"avtoservice/pkg/logger"
)

func main() {
	var (
		filePath   = flag.String("file", "", "path to the XLSX or CSV file")
		provider   = flag.String("provider", "", "supplier provider: starts94, peugeot, nalichnosti")
		customers  = flag.Bool("customers", false, "import customers from CSV instead of stock")
		force      = flag.Bool("force", false, "import even if the document was already imported")
		headerRows = flag.Int("header-rows", 1, "number of header rows to skip")
	)
	flag.Parse()

	if *filePath == "" {
		fmt.Println("usage: import -file <path> [-provider starts94|peugeot|nalichnosti] [-customers] [-force]")
		os.Exit(1)
	}
	if !*customers && *provider == "" {
		fmt.Println("stock import requires -provider")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: true})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	importsService := imports.NewService(document_repo.NewImportLogRepo(txm), txm)

	if *customers {
		err = importCustomers(ctx, txm, importsService, *filePath, *headerRows, *force, log)
	} else {
		err = importStock(ctx, txm, importsService, *filePath, *provider, *headerRows, *force, log)
	}
	if err != nil {
		log.Fatalw("import failed", "error", err)
	}
}

// importStock ingests a supplier XLSX sheet. Each data row carries
// article number, name, quantity and purchase price. All writes share
// one batch transaction; each row sits behind its own savepoint, so a
// failed row is counted and rolled back without aborting the batch.
func importStock(
	ctx context.Context,
	txm *postgres.TxManager,
	importsService *imports.Service,
	filePath, provider string,
	headerRows int,
	force bool,
	log *logger.Logger,
) error {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	// The document header (protocol number, report date) lives in the
	// rows above the data; flatten them for pattern extraction.
	var header strings.Builder
	for i := 0; i < headerRows && i < len(rows); i++ {
		header.WriteString(strings.Join(rows[i], " "))
		header.WriteString("\n")
	}
	invoiceNumber, invoiceDate := imports.ExtractInvoiceInfo(header.String(), provider)

	fileName := filepath.Base(filePath)
	importLog := imports.NewImportLog(provider, fileName, invoiceNumber, invoiceDate)

	if !force {
		dup, err := importsService.IsDuplicate(ctx, provider, invoiceNumber, invoiceDate)
		if err != nil {
			return err
		}
		if dup {
			return fmt.Errorf("document %s was already imported; use -force to repeat", importLog.ImportIdentifier)
		}
	}

	skladService := sklad.NewService(catalog_repo.NewSkladRepo(txm), txm)

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for i := headerRows; i < len(rows); i++ {
			row := rows[i]
			// Each row runs behind a savepoint: a statement that fails
			// at the database rolls back to it instead of aborting the
			// whole batch transaction.
			rowErr := txm.RunInTransactionWithOptions(ctx, rowTxOptions(), func(ctx context.Context) error {
				return importStockRow(ctx, skladService, provider, row, importLog)
			})
			if rowErr != nil {
				importLog.RowsErrors++
				log.Warnw("row skipped", "row", i+1, "error", rowErr)
			}
		}

		log.Infow("stock rows processed",
			"created", importLog.RowsCreated,
			"updated", importLog.RowsUpdated,
			"errors", importLog.RowsErrors,
		)

		return importsService.Log(ctx, importLog, force)
	})
	if err != nil {
		return err
	}

	log.Infow("import finished", "identifier", importLog.ImportIdentifier)
	return nil
}

// rowTxOptions puts a single row's writes behind a savepoint so a
// failed statement rolls back to the savepoint and the batch can go on.
func rowTxOptions() postgres.TxOptions {
	opts := postgres.DefaultTxOptions()
	opts.UseSavepoint = true
	return opts
}

// importStockRow upserts a single sheet row: existing articles get
// quantity and price refreshed, unknown ones are created.
func importStockRow(
	ctx context.Context,
	skladService *sklad.Service,
	provider string,
	row []string,
	importLog *imports.ImportLog,
) error {
	if len(row) < 3 {
		return fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}

	articleNumber := sklad.NormalizeArticleNumber(row[0])
	name := strings.TrimSpace(row[1])
	if articleNumber == "" {
		return fmt.Errorf("empty article number")
	}
	if name == "" {
		return fmt.Errorf("empty name")
	}

	quantity, err := types.NewMoneyFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return fmt.Errorf("bad quantity %q: %w", row[2], err)
	}

	price := types.Zero()
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		price, err = types.NewMoneyFromString(strings.TrimSpace(row[3]))
		if err != nil {
			return fmt.Errorf("bad price %q: %w", row[3], err)
		}
	}

	existing, err := skladService.FindByArticleNumber(ctx, articleNumber)
	if err == nil {
		existing.Name = name
		existing.Quantity = quantity
		existing.PurchasePrice = price
		existing.Supplier = &provider
		if err := skladService.Update(ctx, existing); err != nil {
			return err
		}
		importLog.RowsUpdated++
		return nil
	}

	item := sklad.NewItem(articleNumber, name)
	item.Quantity = quantity
	item.PurchasePrice = price
	item.Supplier = &provider
	if err := skladService.Create(ctx, item); err != nil {
		return err
	}
	importLog.RowsCreated++
	return nil
}

// importCustomers ingests a CSV with columns: name, phone, email,
// address. Only the name is required.
func importCustomers(
	ctx context.Context,
	txm *postgres.TxManager,
	importsService *imports.Service,
	filePath string,
	headerRows int,
	force bool,
	log *logger.Logger,
) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	fileName := filepath.Base(filePath)
	importLog := imports.NewImportLog("customers_csv", fileName, "", "")

	customerService := customer.NewService(catalog_repo.NewCustomerRepo(txm), txm)

	return txm.RunInTransaction(ctx, func(ctx context.Context) error {
		rowNum := 0
		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("read csv: %w", err)
			}
			rowNum++
			if rowNum <= headerRows {
				continue
			}

			rowErr := txm.RunInTransactionWithOptions(ctx, rowTxOptions(), func(ctx context.Context) error {
				return importCustomerRow(ctx, customerService, row)
			})
			if rowErr != nil {
				importLog.RowsErrors++
				log.Warnw("row skipped", "row", rowNum, "error", rowErr)
				continue
			}
			importLog.RowsCreated++
		}

		log.Infow("customer rows processed",
			"created", importLog.RowsCreated,
			"errors", importLog.RowsErrors,
		)

		return importsService.Log(ctx, importLog, force)
	})
}

func importCustomerRow(ctx context.Context, customerService *customer.Service, row []string) error {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return fmt.Errorf("empty name")
	}

	c := customer.NewCustomer(strings.TrimSpace(row[0]))
	if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
		phone := strings.TrimSpace(row[1])
		c.Phone = &phone
	}
	if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
		email := strings.TrimSpace(row[2])
		c.Email = &email
	}
	if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
		address := strings.TrimSpace(row[3])
		c.Address = &address
	}

	return customerService.Create(ctx, c)
}
