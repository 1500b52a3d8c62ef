// cmd/seedmenu loads a demo menu through the catalog service, so the same
// validation and price encoding apply as for API writes.
// Usage: go run ./cmd/seedmenu
package main

import (
	"context"

	"menucatalog/internal/config"
	"menucatalog/internal/dto"
	"menucatalog/internal/infra"
	"menucatalog/internal/logging"
	"menucatalog/internal/model"
	"menucatalog/internal/repository"
	"menucatalog/internal/service"

	"github.com/rs/zerolog/log"
)

var demoMenu = []dto.CreateMenuItemInput{
	{Name: "Bruschetta", Description: dto.Set("Grilled bread, tomato, basil"), Price: 7.5, Category: model.CategoryAppetizer},
	{Name: "Pasta Carbonara", Description: dto.Set("Creamy pasta with pancetta"), Price: 15.99, Category: model.CategoryMainCourse},
	{Name: "Grilled Salmon", Description: dto.Null[string](), Price: 22.25, Category: model.CategoryMainCourse},
	{Name: "Tiramisu", Description: dto.Set("Coffee-soaked ladyfingers"), Price: 6.5, Category: model.CategoryDessert},
	{Name: "Lemonade", Description: dto.Null[string](), Price: 3.25, Category: model.CategoryDrink,
		Availability: dto.Set(model.AvailabilityOutOfStock)},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	db, err := infra.NewDatabase(cfg.DatabaseURL, infra.PoolConfig{})
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}
	svc := service.NewMenuItemService(repository.NewMenuItemRepository(db, cfg.QueryTimeout()))

	ctx := context.Background()
	for _, in := range demoMenu {
		item, err := svc.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("seed failed")
		}
		log.Info().Int64("id", item.ID).Str("name", item.Name).Float64("price", item.Price).Msg("menu item created")
	}
}
