// cmd/seed/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS items (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	stock INTEGER NOT NULL DEFAULT 0,
	category TEXT NOT NULL DEFAULT 'general',
	unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	selling_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	unit TEXT NOT NULL DEFAULT 'pcs',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS demand_entries (
	id BIGSERIAL PRIMARY KEY,
	item_id BIGINT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
	week INTEGER NOT NULL,
	quantity DOUBLE PRECISION NOT NULL,
	CONSTRAINT demand_entries_item_week_key UNIQUE (item_id, week) DEFERRABLE INITIALLY DEFERRED
);

CREATE INDEX IF NOT EXISTS idx_demand_entries_item_id ON demand_entries (item_id);
`

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newFileFlag(defaultPath string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "file",
		Usage: "CSV file to load",
		Value: defaultPath,
	}
}

func newHistoryCapFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "history-cap",
		Usage:   "Maximum demand weeks retained per item",
		Value:   12,
		EnvVars: []string{"ENGINE_HISTORY_CAP"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Create the schema and seed the database with sample data",
		Commands: []*cli.Command{
			{
				Name:   "schema",
				Usage:  "Create the items and demand_entries tables",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runSchema,
			},
			{
				Name:   "items",
				Usage:  "Seed items from a CSV file (name,stock,category,unit_price,selling_price,unit)",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("./data/seeds/items.csv")},
				Action: runSeedItems,
			},
			{
				Name:   "demand",
				Usage:  "Seed weekly demand from a CSV file (item_id,week,quantity)",
				Flags:  []cli.Flag{newDBURLFlag(), newFileFlag("./data/seeds/demand.csv"), newHistoryCapFlag()},
				Action: runSeedDemand,
			},
			{
				Name:  "all",
				Usage: "Create the schema, then seed items and demand",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:  "items-file",
						Usage: "Items CSV file",
						Value: "./data/seeds/items.csv",
					},
					&cli.StringFlag{
						Name:  "demand-file",
						Usage: "Demand CSV file",
						Value: "./data/seeds/demand.csv",
					},
					newHistoryCapFlag(),
				},
				Action: func(c *cli.Context) error {
					if err := runSchema(c); err != nil {
						return fmt.Errorf("error creating schema: %w", err)
					}
					if err := withDB(c, func(ctx context.Context, db *sql.DB) error {
						return seedItems(ctx, db, c.String("items-file"))
					}); err != nil {
						return fmt.Errorf("error seeding items: %w", err)
					}
					if err := withDB(c, func(ctx context.Context, db *sql.DB) error {
						return seedDemand(ctx, db, c.String("demand-file"), c.Int("history-cap"))
					}); err != nil {
						return fmt.Errorf("error seeding demand: %w", err)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func withDB(c *cli.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return fn(context.Background(), db)
}

func runSchema(c *cli.Context) error {
	return withDB(c, func(ctx context.Context, db *sql.DB) error {
		log.Println("Creating schema...")
		if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		log.Println("Schema ready")
		return nil
	})
}

func runSeedItems(c *cli.Context) error {
	return withDB(c, func(ctx context.Context, db *sql.DB) error {
		return seedItems(ctx, db, c.String("file"))
	})
}

func runSeedDemand(c *cli.Context) error {
	return withDB(c, func(ctx context.Context, db *sql.DB) error {
		return seedDemand(ctx, db, c.String("file"), c.Int("history-cap"))
	})
}

func seedItems(ctx context.Context, db *sql.DB, filePath string) error {
	log.Printf("Seeding items from %s\n", filePath)

	rows, err := readCSV(filePath, []string{"name", "stock", "category", "unit_price", "selling_price", "unit"})
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO items (name, stock, category, unit_price, selling_price, unit)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i, record := range rows {
		stock, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return fmt.Errorf("row %d: invalid stock %q: %w", i+1, record[1], err)
		}
		unitPrice, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid unit_price %q: %w", i+1, record[3], err)
		}
		sellingPrice, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil {
			return fmt.Errorf("row %d: invalid selling_price %q: %w", i+1, record[4], err)
		}

		category := strings.TrimSpace(record[2])
		if category == "" {
			category = "general"
		}
		unit := strings.TrimSpace(record[5])
		if unit == "" {
			unit = "pcs"
		}

		if _, err := tx.ExecContext(ctx, query,
			strings.TrimSpace(record[0]), stock, category, unitPrice, sellingPrice, unit); err != nil {
			return fmt.Errorf("row %d: failed to insert item: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Successfully seeded %d items\n", len(rows))
	return nil
}

func seedDemand(ctx context.Context, db *sql.DB, filePath string, cap int) error {
	log.Printf("Seeding demand entries from %s\n", filePath)

	rows, err := readCSV(filePath, []string{"item_id", "week", "quantity"})
	if err != nil {
		return err
	}

	entries, err := parseDemandRows(rows, cap)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO demand_entries (item_id, week, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, week) DO UPDATE SET quantity = EXCLUDED.quantity`

	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx, query, entry.itemID, entry.week, entry.quantity); err != nil {
			return fmt.Errorf("row %d: failed to insert demand entry: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("Successfully seeded %d demand entries\n", len(entries))
	return nil
}

type demandRow struct {
	itemID   int64
	week     int
	quantity float64
}

// parseDemandRows enforces the same shape the repositories guarantee at
// runtime: non-negative quantities and, per item, weeks that run densely
// from 1 up to at most cap entries. A CSV that violates either is rejected
// whole rather than seeding a history the engine would misread.
func parseDemandRows(rows [][]string, cap int) ([]demandRow, error) {
	if cap < 1 {
		return nil, fmt.Errorf("history cap must be at least 1, got %d", cap)
	}

	parsed := make([]demandRow, 0, len(rows))
	weeksByItem := make(map[int64][]int)

	for i, record := range rows {
		itemID, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid item_id %q: %w", i+1, record[0], err)
		}
		week, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid week %q: %w", i+1, record[1], err)
		}
		quantity, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q: %w", i+1, record[2], err)
		}

		if week < 1 {
			return nil, fmt.Errorf("row %d: week must be at least 1, got %d", i+1, week)
		}
		if week > cap {
			return nil, fmt.Errorf("row %d: week %d exceeds the %d-week history cap", i+1, week, cap)
		}
		if quantity < 0 {
			return nil, fmt.Errorf("row %d: quantity must not be negative, got %g", i+1, quantity)
		}

		weeksByItem[itemID] = append(weeksByItem[itemID], week)
		parsed = append(parsed, demandRow{itemID: itemID, week: week, quantity: quantity})
	}

	for itemID, weeks := range weeksByItem {
		sort.Ints(weeks)
		for i, week := range weeks {
			if week != i+1 {
				return nil, fmt.Errorf("item %d: weeks must be contiguous from 1 with no repeats, got %v", itemID, weeks)
			}
		}
	}

	return parsed, nil
}

// readCSV loads every record and checks the header carries the expected
// columns in order.
func readCSV(filePath string, columns []string) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < len(columns) {
		return nil, fmt.Errorf("header has %d columns, expected %d (%s)", len(header), len(columns), strings.Join(columns, ","))
	}
	for i, col := range columns {
		if strings.TrimSpace(header[i]) != col {
			return nil, fmt.Errorf("header column %d is %q, expected %q", i+1, header[i], col)
		}
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		if len(record) < len(columns) {
			return nil, fmt.Errorf("record has %d columns, expected %d: %v", len(record), len(columns), record)
		}
		rows = append(rows, record)
	}

	return rows, nil
}
