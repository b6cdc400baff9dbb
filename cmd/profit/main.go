package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/industrialist/evemargin/internal/catalog"
	"github.com/industrialist/evemargin/internal/config"
	"github.com/industrialist/evemargin/internal/database"
	"github.com/industrialist/evemargin/internal/esi"
	"github.com/industrialist/evemargin/internal/industry"
	"github.com/industrialist/evemargin/internal/market"
	"github.com/industrialist/evemargin/internal/version"
)

// result holds one recipe evaluation for ordered printing.
type result struct {
	name string
	ev   industry.Evaluation
	pi   *industry.PIEvaluation
}

func main() {
	configPath := flag.String("config", "configs/profit.yaml", "path to config file")
	pi := flag.Bool("pi", false, "treat recipes as planetary schematics with customs fees")
	verbose := flag.Bool("v", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")

	var recipes []string
	flag.Func("recipe", "recipe name to evaluate (repeatable)", func(name string) error {
		recipes = append(recipes, name)
		return nil
	})

	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if len(recipes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: profit -recipe <name> [-recipe <name> ...] [-pi]")
		os.Exit(2)
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	})).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting profit estimator",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
		"region_id", cfg.Market.RegionID,
		"system_id", cfg.Market.SystemID,
		"recipes", len(recipes),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the recipe catalog
	source, cleanup, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open recipe catalog", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Create the ESI client and market
	client := esi.NewClient(
		cfg.Market.RegionID,
		esi.WithBaseURL(cfg.ESI.BaseURL),
		esi.WithDatasource(cfg.ESI.Datasource),
		esi.WithUserAgent(cfg.ESI.UserAgent),
		esi.WithTimeout(cfg.ESI.Timeout),
		esi.WithRetries(cfg.ESI.MaxRetries, cfg.ESI.RetryBackoff),
		esi.WithLogger(logger),
	)

	mkt := market.New(
		client,
		market.WithSystemScope(cfg.Market.SystemID),
		market.WithFees(market.FeeConfig{
			SalesTax:  cfg.Market.SalesTax,
			BrokerFee: cfg.Market.BrokerFee,
		}),
		market.WithLogger(logger),
	)

	// Recipes are independent and read-only, so they can be priced
	// concurrently. Ingredient fetches inside one recipe stay
	// sequential.
	results := make([]result, len(recipes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, name := range recipes {
		i, name := i, name
		g.Go(func() error {
			res, err := evaluate(gctx, cfg, source, mkt, name, *pi)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("evaluation failed", "error", err)
		os.Exit(1)
	}

	printer := message.NewPrinter(language.English)
	for _, res := range results {
		printResult(printer, res)
	}
}

// evaluate prices one recipe, planetary or plain.
func evaluate(ctx context.Context, cfg *config.Config, source catalog.Source, mkt *market.Market, name string, pi bool) (result, error) {
	if pi {
		recipe, err := source.PIRecipe(ctx, name)
		if err != nil {
			return result{}, err
		}
		production := industry.Production{
			Recipe:              recipe,
			TaxRate:             cfg.Planetary.TaxRate,
			CommandCenterLaunch: cfg.Planetary.CommandCenterLaunch,
		}
		ev, err := production.OverallProfit(ctx, mkt)
		if err != nil {
			return result{}, fmt.Errorf("evaluate %q: %w", name, err)
		}
		return result{name: name, ev: ev.Evaluation, pi: &ev}, nil
	}

	recipe, err := source.Recipe(ctx, name)
	if err != nil {
		return result{}, err
	}
	ev, err := industry.Evaluate(ctx, mkt, recipe)
	if err != nil {
		return result{}, fmt.Errorf("evaluate %q: %w", name, err)
	}
	return result{name: name, ev: ev}, nil
}

// openCatalog builds the configured recipe source and returns a
// cleanup func for any held resources.
func openCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceDatabase:
		logger.Info("connecting to recipe database",
			"host", cfg.Catalog.Database.Host,
			"port", cfg.Catalog.Database.Port,
			"database", cfg.Catalog.Database.Name,
		)
		pool, err := database.Connect(ctx, cfg.Catalog.Database)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewStore(pool), pool.Close, nil

	default:
		src, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("recipe dataset loaded",
			"path", cfg.Catalog.Path,
			"recipes", src.Len(),
		)
		return src, func() {}, nil
	}
}

func printResult(p *message.Printer, res result) {
	p.Printf("%s\n", res.name)
	p.Printf("  Ingredients cost: %.2f ISK\n", res.ev.IngredientsCost)
	p.Printf("  Product price:    %.2f ISK\n", res.ev.ProductPrice)
	p.Printf("  Profit:           %.2f ISK\n", res.ev.Profit)

	if res.pi != nil {
		p.Printf("  Import cost:      %.2f ISK\n", res.pi.ImportCost)
		p.Printf("  Export cost:      %.2f ISK\n", res.pi.ExportCost)
		p.Printf("  Overall profit:   %.2f ISK\n", res.pi.OverallProfit)
	}

	for _, ing := range res.ev.Ingredients {
		switch ing.Fill.State {
		case market.FillPartial:
			p.Printf("  WARNING: not enough %s on the market, missing %d of %d units (shortfall priced at %.2f ISK, worst observed ask)\n",
				ing.Item.Name, ing.Fill.Shortfall, ing.Fill.Requested, ing.Fill.LastPrice)
		case market.FillNone:
			p.Printf("  WARNING: no sell orders for %s, %d units unpriced\n",
				ing.Item.Name, ing.Fill.Requested)
		}
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
