// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command sanaactl is the operator tool for the Sanaa directory.
//
// It reaches the create operations the public HTTP surface never exposes.
// Storage is selected with the same environment variables as the API.
//
//	sanaactl migrate
//	sanaactl seed
//	sanaactl create-account   -username admin -password '...'
//	sanaactl create-category  -name-en Pottery -name-fr Poterie -name-ar الفخار -icon pottery
//	sanaactl create-artisan   -file artisan.json
//
// With the default memory driver every command works on a throwaway store,
// which is useful for dry runs only.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/sanaa/internal/bootstrap"
	"github.com/taibuivan/sanaa/internal/core/artisan"
	"github.com/taibuivan/sanaa/internal/core/category"
	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/config"
	"github.com/taibuivan/sanaa/internal/platform/migration"
	"github.com/taibuivan/sanaa/internal/users/account"
	"github.com/taibuivan/sanaa/pkg/pointer"
)

const usage = `usage: sanaactl <command> [flags]

commands:
  migrate          apply pending PostgreSQL migrations
  seed             load the reference dataset into an empty store
  create-account   register an account (-username, -password)
  create-category  add a category (-name-en, -name-fr, -name-ar, -icon, -desc-*)
  create-artisan   add an artisan from a JSON file (-file, "-" for stdin)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sanaactl:", describe(err))
		stop()
		os.Exit(1)
	}
}

// run dispatches one subcommand.
func run(ctx context.Context, command string, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := bootstrap.NewLogger(cfg.Debug)

	switch command {
	case "migrate":
		if !cfg.UsesPostgres() {
			return fmt.Errorf("migrate requires STORAGE_DRIVER=%s", config.DriverPostgres)
		}
		return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)

	case "seed":
		return withStore(ctx, cfg, log, func(store bootstrap.Store) error {
			return directory.Seed(ctx, store, log)
		})

	case "create-account":
		return createAccount(ctx, cfg, log, args, stdout)

	case "create-category":
		return createCategory(ctx, cfg, log, args, stdout)

	case "create-artisan":
		return createArtisan(ctx, cfg, log, args, stdin, stdout)

	case "help", "-h", "--help":
		_, err := fmt.Fprint(stdout, usage)
		return err

	default:
		return fmt.Errorf("unknown command %q\n\n%s", command, usage)
	}
}

func createAccount(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("create-account", flag.ContinueOnError)
	username := flags.String("username", "", "account username (3-50 characters)")
	password := flags.String("password", "", "account password (at least 8 characters)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	return withStore(ctx, cfg, log, func(store bootstrap.Store) error {
		created, err := account.NewService(store, log).Register(ctx, *username, *password)
		if err != nil {
			return err
		}
		return printJSON(stdout, created)
	})
}

func createCategory(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("create-category", flag.ContinueOnError)
	nameEn := flags.String("name-en", "", "English name")
	nameFr := flags.String("name-fr", "", "French name")
	nameAr := flags.String("name-ar", "", "Arabic name")
	descEn := flags.String("desc-en", "", "English description (optional)")
	descFr := flags.String("desc-fr", "", "French description (optional)")
	descAr := flags.String("desc-ar", "", "Arabic description (optional)")
	icon := flags.String("icon", "", "presentation icon key")
	if err := flags.Parse(args); err != nil {
		return err
	}

	data := directory.NewCategory{
		NameEn:        *nameEn,
		NameFr:        *nameFr,
		NameAr:        *nameAr,
		DescriptionEn: pointer.NilIfZero(*descEn),
		DescriptionFr: pointer.NilIfZero(*descFr),
		DescriptionAr: pointer.NilIfZero(*descAr),
		Icon:          *icon,
	}

	return withStore(ctx, cfg, log, func(store bootstrap.Store) error {
		created, err := category.NewService(store, log).Create(ctx, data)
		if err != nil {
			return err
		}
		return printJSON(stdout, created)
	})
}

// artisanFile is the JSON document accepted by create-artisan. It uses the
// same camelCase names as the API.
type artisanFile struct {
	NameEn          string   `json:"nameEn"`
	NameFr          string   `json:"nameFr"`
	NameAr          string   `json:"nameAr"`
	CategoryID      string   `json:"categoryId"`
	BioEn           string   `json:"bioEn"`
	BioFr           string   `json:"bioFr"`
	BioAr           string   `json:"bioAr"`
	ServicesEn      []string `json:"servicesEn"`
	ServicesFr      []string `json:"servicesFr"`
	ServicesAr      []string `json:"servicesAr"`
	Location        string   `json:"location"`
	Phone           string   `json:"phone"`
	Email           *string  `json:"email"`
	PriceRange      string   `json:"priceRange"`
	ProfileImage    string   `json:"profileImage"`
	PortfolioImages []string `json:"portfolioImages"`
}

func createArtisan(ctx context.Context, cfg *config.Config, log *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("create-artisan", flag.ContinueOnError)
	path := flags.String("file", "-", "JSON document describing the artisan, - for stdin")
	if err := flags.Parse(args); err != nil {
		return err
	}

	reader := stdin
	if *path != "-" {
		file, err := os.Open(*path)
		if err != nil {
			return err
		}
		defer file.Close()
		reader = file
	}

	var input artisanFile
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return fmt.Errorf("decode artisan: %w", err)
	}

	return withStore(ctx, cfg, log, func(store bootstrap.Store) error {
		created, err := artisan.NewService(store, log).Create(ctx, directory.NewArtisan(input))
		if err != nil {
			return err
		}
		return printJSON(stdout, created)
	})
}

// withStore opens storage without migrating, runs fn and closes it.
func withStore(ctx context.Context, cfg *config.Config, log *slog.Logger, fn func(bootstrap.Store) error) error {
	storage, err := bootstrap.OpenStorage(ctx, cfg, false, log)
	if err != nil {
		return err
	}
	defer storage.Close()

	return fn(storage.Store)
}

func printJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// describe renders validation details on the terminal, which the API would
// otherwise send as JSON.
func describe(err error) string {
	appError := apperr.As(err)
	if appError == nil {
		return err.Error()
	}
	if appError.Cause != nil {
		return appError.Message + ": " + appError.Cause.Error()
	}

	message := appError.Message
	for _, detail := range appError.Details {
		message += fmt.Sprintf("\n  %s: %s", detail.Field, detail.Message)
	}
	return message
}
