package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Service каталог тарифов лодок. Загружается один раз при старте сервиса,
// после загрузки полностью иммутабелен и безопасно разделяется между
// сессиями без блокировок.
type Service struct {
	repo   CatalogRepository
	logger Logger

	boats   map[string]*domain.BoatPricingProfile
	ordered []*domain.BoatPricingProfile
	packs   []*domain.ExtraPack
}

// NewService создает сервис каталога. До вызова Load каталог пуст.
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		boats:  make(map[string]*domain.BoatPricingProfile),
	}
}

// Load загружает каталог из репозитория и проверяет инварианты данных.
// Любое нарушение - фатальная ошибка: сервис не должен стартовать
// с неконсистентным каталогом.
func (s *Service) Load(ctx context.Context) error {
	boats, err := s.repo.ListBoats(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - list boats: %v", ErrInternal, err)
	}

	packs, err := s.repo.ListPacks(ctx)
	if err != nil {
		return fmt.Errorf("%w: Load - list packs: %v", ErrInternal, err)
	}

	for _, boat := range boats {
		if err := validateBoat(boat); err != nil {
			return err
		}
	}

	for _, pack := range packs {
		for _, boat := range boats {
			if !pack.AppliesTo(boat) {
				continue
			}
			original := sumExtraPrices(boat, pack.ExtraNames)
			if original.LessThan(pack.BundlePrice) {
				return fmt.Errorf("%w: pack %s on boat %s: bundle=%s original=%s",
					ErrNegativePackSavings, pack.ID, boat.ID,
					pack.BundlePrice.String(), original.String())
			}
		}
	}

	s.boats = make(map[string]*domain.BoatPricingProfile, len(boats))
	for _, boat := range boats {
		s.boats[boat.ID] = boat
	}
	s.ordered = boats
	s.packs = packs

	s.logger.Info("Catalog loaded: %d boats, %d extra packs", len(boats), len(packs))
	return nil
}

// validateBoat проверяет, что все сезоны лодки определяют один и тот же набор
// продолжительностей и что этот набор соответствует категории прав лодки
func validateBoat(boat *domain.BoatPricingProfile) error {
	low, ok := boat.Pricing[domain.SeasonLow]
	if !ok {
		return fmt.Errorf("%w: boat %s has no low season table", ErrInconsistentSeasons, boat.ID)
	}

	for _, season := range domain.AllSeasons {
		pricing, ok := boat.Pricing[season]
		if !ok {
			return fmt.Errorf("%w: boat %s has no %s season table", ErrInconsistentSeasons, boat.ID, season)
		}
		if len(pricing.Prices) != len(low.Prices) {
			return fmt.Errorf("%w: boat %s season %s", ErrInconsistentSeasons, boat.ID, season)
		}
		for key := range low.Prices {
			if _, ok := pricing.Prices[key]; !ok {
				return fmt.Errorf("%w: boat %s season %s misses %s", ErrInconsistentSeasons, boat.ID, season, key)
			}
		}
	}

	expected := domain.DurationsForLicense(boat.RequiresLicense)
	if len(low.Prices) != len(expected) {
		return fmt.Errorf("%w: boat %s", ErrIllegalDurationSet, boat.ID)
	}
	for _, key := range expected {
		if _, ok := low.Prices[key]; !ok {
			return fmt.Errorf("%w: boat %s misses %s", ErrIllegalDurationSet, boat.ID, key)
		}
	}

	return nil
}

// Boats возвращает все лодки каталога в стабильном порядке
func (s *Service) Boats() []*domain.BoatPricingProfile {
	return s.ordered
}

// BoatByID возвращает тарифный профиль лодки
func (s *Service) BoatByID(boatID string) (*domain.BoatPricingProfile, error) {
	boat, ok := s.boats[boatID]
	if !ok {
		return nil, ErrBoatNotFound
	}
	return boat, nil
}

// PriceFor возвращает цену аренды для комбинации лодка/сезон/продолжительность
func (s *Service) PriceFor(boatID string, season domain.Season, key domain.DurationKey) (decimal.Decimal, error) {
	boat, ok := s.boats[boatID]
	if !ok {
		return decimal.Decimal{}, ErrBoatNotFound
	}

	pricing, ok := boat.Pricing[season]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: boat=%s season=%s", ErrNoSuchPrice, boatID, season)
	}

	price, ok := pricing.Prices[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: boat=%s season=%s duration=%s", ErrNoSuchPrice, boatID, season, key)
	}

	return price, nil
}

// AvailableDurations возвращает упорядоченный набор продолжительностей лодки.
// Набор определяется тарифной таблицей низкого сезона (после Load все сезоны
// гарантированно совпадают по набору ключей).
func (s *Service) AvailableDurations(boatID string) ([]domain.DurationKey, error) {
	boat, ok := s.boats[boatID]
	if !ok {
		return nil, ErrBoatNotFound
	}

	low := boat.Pricing[domain.SeasonLow]
	keys := make([]domain.DurationKey, 0, len(low.Prices))
	for _, key := range domain.AllDurations {
		if _, ok := low.Prices[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// ExtrasFor возвращает список опций лодки
func (s *Service) ExtrasFor(boatID string) ([]domain.ExtraItem, error) {
	boat, ok := s.boats[boatID]
	if !ok {
		return nil, ErrBoatNotFound
	}
	return boat.Extras, nil
}

// PacksFor возвращает паки, применимые к лодке: те, все опции которых есть
// у этой лодки. OriginalPrice вычисляется из цен опций конкретной лодки.
func (s *Service) PacksFor(boatID string) ([]domain.ExtraPack, error) {
	boat, ok := s.boats[boatID]
	if !ok {
		return nil, ErrBoatNotFound
	}

	var result []domain.ExtraPack
	for _, pack := range s.packs {
		if !pack.AppliesTo(boat) {
			continue
		}
		copied := *pack
		copied.ExtraNames = append([]string(nil), pack.ExtraNames...)
		copied.OriginalPrice = sumExtraPrices(boat, pack.ExtraNames)
		result = append(result, copied)
	}
	return result, nil
}

// PackForBoat возвращает пак по id, если он применим к лодке
func (s *Service) PackForBoat(boatID, packID string) (*domain.ExtraPack, error) {
	packs, err := s.PacksFor(boatID)
	if err != nil {
		return nil, err
	}
	for i := range packs {
		if packs[i].ID == packID {
			return &packs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: pack=%s boat=%s", ErrPackNotFound, packID, boatID)
}

func sumExtraPrices(boat *domain.BoatPricingProfile, names []string) decimal.Decimal {
	total := decimal.Zero
	for _, name := range names {
		if extra, ok := boat.ExtraByName(name); ok {
			total = total.Add(extra.Price)
		}
	}
	return total
}
