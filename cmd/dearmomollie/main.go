package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dearmomollie/internal/catalog"
	"dearmomollie/internal/config"
	"dearmomollie/internal/static"
	"dearmomollie/internal/templates"

	"github.com/joho/godotenv"
)

func main() {
	var serve bool
	var addr string
	var dump bool
	var shopID string
	var help bool

	flag.BoolVar(&serve, "serve", false, "Run HTTP server mode")
	flag.StringVar(&addr, "addr", ":8080", "Address to bind in server mode")
	flag.BoolVar(&dump, "dump", false, "Fetch the catalog and print normalized products as JSON")
	flag.StringVar(&shopID, "shop", "", "Override the shop id used to scope the catalog fetch")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message")
	flag.Parse()

	if help {
		showHelp()
		return
	}

	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if shopID != "" {
		cfg.Catalog.ShopID = shopID
	}

	if dump {
		if err := dumpCatalog(cfg); err != nil {
			slog.Error("failed to dump catalog", "error", err)
			os.Exit(1)
		}
		return
	}

	if !serve {
		fmt.Println("Error: use -serve for web mode or -dump to print the catalog")
		showHelp()
		os.Exit(1)
	}

	static.Init()
	if err := templates.Init(cfg, static.StyleAssetPath); err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	if err := runServer(cfg, addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// dumpCatalog runs one fetch cycle and prints the normalized products, which
// is handy for checking what the upstream feed is currently returning.
func dumpCatalog(cfg *config.Config) error {
	fetcher, err := catalog.NewFetcher(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("create catalog fetcher: %w", err)
	}

	result, err := fetcher.Fetch(context.Background())
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result.Products); err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	fmt.Fprintf(os.Stderr, "%d products", len(result.Products))
	if result.LastSync != "" {
		fmt.Fprintf(os.Stderr, ", last synced %s", result.LastSync)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

func showHelp() {
	fmt.Println("DearMomollie - Storefront Server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dearmomollie -serve [-addr :8080]")
	fmt.Println("  dearmomollie -dump [-shop <shop_id>]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -serve          Run the HTTP server")
	fmt.Println("  -addr           Address to bind in server mode")
	fmt.Println("  -dump           Fetch the catalog and print normalized products")
	fmt.Println("  -shop           Shop id to scope the catalog fetch")
	fmt.Println("  -help, -h       Show this help message")
}
