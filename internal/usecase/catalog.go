package usecase

import (
	"context"
	"time"

	domain "github.com/Jazz7-Dev/FoodY.com/internal/entity"
	"github.com/Jazz7-Dev/FoodY.com/internal/logging"
)

type Catalog struct {
	repo  FoodRepo
	cache FoodCache // optional
	ttl   time.Duration
}

func NewCatalog(repo FoodRepo, cache FoodCache, ttl time.Duration) *Catalog {
	return &Catalog{repo: repo, cache: cache, ttl: ttl}
}

// List returns the full food catalog. Reads through the cache when one is
// wired; cache failures are logged and the catalog is served from the repo.
func (uc *Catalog) List(ctx context.Context) ([]domain.Food, error) {
	if uc.cache != nil {
		foods, hit, err := uc.cache.Get(ctx)
		if err != nil {
			logging.FromCtx(ctx).Warn("food cache read failed", "error", err)
		} else if hit {
			return foods, nil
		}
	}

	foods, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, foods, uc.ttl); err != nil {
			logging.FromCtx(ctx).Warn("food cache write failed", "error", err)
		}
	}
	return foods, nil
}
