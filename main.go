package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"goattrition/adapters/postgres"
	"goattrition/adapters/tabular"
	"goattrition/domain/table"
	"goattrition/internal/config"
	"goattrition/internal/errors"
	"goattrition/internal/testkit"
	"goattrition/ports"
	"goattrition/ui"
)

// loadDataset reads the configured data file through the caching loader, or
// falls back to a synthetic demo dataset when no file is configured.
func loadDataset(ctx context.Context, appConfig *config.Config) (*table.Dataset, error) {
	if appConfig.Data.File == "" {
		log.Println("[Main] DATA_FILE not set, generating synthetic demo dataset")
		return testkit.GenerateEmployees(500, 42), nil
	}

	loader := tabular.NewCachingLoader(tabular.NewDataReader())
	ds, err := loader.Load(ctx, appConfig.Data.File)
	if err != nil {
		return nil, errors.LoadFailed(appConfig.Data.File, err)
	}
	return ds, nil
}

// initFilterRepository connects the optional saved-filter store
func initFilterRepository(ctx context.Context, appConfig *config.Config) (ports.FilterRepository, *sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, nil, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "failed to prepare database schema")
	}
	return postgres.NewFilterRepository(db), db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	dataset, err := loadDataset(ctx, appConfig)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("[Main] Dataset %q ready: %d rows, %d fields", dataset.Name, dataset.RowCount(), dataset.FieldCount())

	filters, db, err := initFilterRepository(ctx, appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize saved filters: %v", err)
	}
	if db != nil {
		defer db.Close()
		log.Println("[Main] Saved filters enabled")
	}

	app := ui.NewApp(ui.Config{
		Dataset:        dataset,
		AttritionField: appConfig.Data.AttritionField,
		PreviewRows:    appConfig.Data.PreviewRows,
		Filters:        filters,
	})

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("[Main] API listening on :%s", appConfig.Server.Port)
		return http.ListenAndServe(":"+appConfig.Server.Port, app.Handler())
	})
	if appConfig.Profiling.Enabled {
		group.Go(func() error {
			log.Printf("[Main] pprof listening on :%s", appConfig.Profiling.Port)
			return http.ListenAndServe(":"+appConfig.Profiling.Port, nil)
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
