package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/config"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/intake"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/storage"
)

// staticCatalog is the CLI's stand-in service catalog. The real catalog is a
// collaborator outside this module; the core only consumes the interface.
type staticCatalog struct{}

func (staticCatalog) MatchServices(projectType string, _ model.BudgetBucket) []service.ServiceOffering {
	switch projectType {
	case "e-commerce":
		return []service.ServiceOffering{{Name: "Storefront Build", PriceRange: "$15k-$50k"}}
	case "mobile":
		return []service.ServiceOffering{{Name: "Mobile App Development", PriceRange: "$20k-$60k"}}
	case "ai":
		return []service.ServiceOffering{{Name: "AI Integration", PriceRange: "$15k-$75k"}}
	case "website":
		return []service.ServiceOffering{{Name: "Website Design & Build", PriceRange: "$5k-$25k"}}
	default:
		return nil
	}
}

// usdFormatter renders plain USD amounts.
type usdFormatter struct{}

func (usdFormatter) Format(amount float64, currency string) string {
	return fmt.Sprintf("%s %.0f", currency, amount)
}

// logNotifier logs notifications instead of delivering them; transports live
// outside this module.
type logNotifier struct{}

func (logNotifier) Send(_ context.Context, channel model.NotificationChannel, content string) error {
	slog.Info("handoff notification", "channel", channel, "bytes", len(content))
	return nil
}

// buildService wires the intake service with the CLI's collaborators. The
// returned closer releases the archive database.
func buildService(cfg config.Config) (*intake.Service, func(), error) {
	archive, err := storage.NewSQLiteArchive(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive: %w", err)
	}
	if err := archive.Migrate(context.Background()); err != nil {
		_ = archive.Close()
		return nil, nil, fmt.Errorf("failed to migrate archive: %w", err)
	}

	svc := intake.New(intake.Config{
		Catalog:   staticCatalog{},
		Formatter: usdFormatter{},
		Notifier:  logNotifier{},
		Archive:   archive,
	})
	closer := func() {
		_ = archive.Close()
	}
	return svc, closer, nil
}
