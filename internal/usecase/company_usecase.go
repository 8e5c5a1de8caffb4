package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
)

const companyCacheKey = "company:info"

// CompanyUseCase serves the company configuration with a read-through cache.
// The tariff (cost per kg) and BCV rate are read on every billing and ledger
// request, so cache misses only hit Postgres once per TTL window.
type CompanyUseCase struct {
	companyRepo CompanyRepository
	cache       Cache
}

// NewCompanyUseCase creates a new CompanyUseCase.
func NewCompanyUseCase(companyRepo CompanyRepository, cache Cache) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		cache:       cache,
	}
}

// Get returns the current company configuration, from cache when fresh.
func (uc *CompanyUseCase) Get(ctx context.Context) (domain.CompanyInfo, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, companyCacheKey); err == nil && cached != "" {
			var info domain.CompanyInfo
			if err := json.Unmarshal([]byte(cached), &info); err == nil {
				return info, nil
			}
		}
	}

	info, err := uc.companyRepo.Get(ctx)
	if err != nil {
		return domain.CompanyInfo{}, err
	}

	uc.cacheSet(ctx, info)
	return info, nil
}

// Update persists new company configuration and refreshes the cache.
func (uc *CompanyUseCase) Update(ctx context.Context, info domain.CompanyInfo) (domain.CompanyInfo, error) {
	info.UpdatedAt = time.Now().UTC()
	if err := uc.companyRepo.Update(ctx, info); err != nil {
		return domain.CompanyInfo{}, err
	}
	uc.cacheSet(ctx, info)
	return info, nil
}

func (uc *CompanyUseCase) cacheSet(ctx context.Context, info domain.CompanyInfo) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(info)
	if err != nil {
		return
	}
	// A failed cache write only costs an extra DB read later.
	_ = uc.cache.Set(ctx, companyCacheKey, string(data), CompanyCacheTTL)
}
