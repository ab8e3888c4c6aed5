package durations

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
)

// LegalDuration легальная продолжительность аренды с подписью.
// Price заполняется только когда известны конкретная лодка и дата.
type LegalDuration struct {
	Key   domain.DurationKey
	Label string
	Price *decimal.Decimal
}

// Service определяет набор легальных продолжительностей аренды
// для лодки или категории прав
type Service struct {
	catalog Catalog
	logger  Logger
}

// NewService создает сервис легальных продолжительностей
func NewService(catalog Catalog, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// LegalForLicenseFilter возвращает набор ключей и подписей для категории прав,
// без цен - лодка еще не выбрана
func (s *Service) LegalForLicenseFilter(requiresLicense bool) []LegalDuration {
	keys := domain.DurationsForLicense(requiresLicense)
	result := make([]LegalDuration, 0, len(keys))
	for _, key := range keys {
		result = append(result, LegalDuration{Key: key, Label: key.Label()})
	}
	return result
}

// LegalForBoat возвращает набор продолжительностей конкретной лодки без цен
// (дата не выбрана, сезон не известен)
func (s *Service) LegalForBoat(boatID string) ([]LegalDuration, error) {
	keys, err := s.catalog.AvailableDurations(boatID)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrBoatNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("%w: LegalForBoat: %v", ErrInternal, err)
	}

	result := make([]LegalDuration, 0, len(keys))
	for _, key := range keys {
		result = append(result, LegalDuration{Key: key, Label: key.Label()})
	}
	return result, nil
}

// PricedForBoat возвращает набор продолжительностей лодки с ценами по сезону
// выбранной даты. Ошибка сезона пробрасывается наружу, даже если вызывающему
// нужны только подписи - молчаливого дефолта сезона нет.
func (s *Service) PricedForBoat(boatID string, date time.Time) ([]LegalDuration, error) {
	season, err := domain.ResolveSeason(date)
	if err != nil {
		return nil, err
	}

	keys, err := s.catalog.AvailableDurations(boatID)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrBoatNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("%w: PricedForBoat: %v", ErrInternal, err)
	}

	result := make([]LegalDuration, 0, len(keys))
	for _, key := range keys {
		price, err := s.catalog.PriceFor(boatID, season, key)
		if err != nil {
			// Набор ключей взят из каталога, промах цены - баг данных
			s.logger.Error("PricedForBoat: missing price boat=%s season=%s duration=%s: %v",
				boatID, season, key, err)
			return nil, fmt.Errorf("%w: PricedForBoat: %v", ErrInternal, err)
		}
		p := price
		result = append(result, LegalDuration{Key: key, Label: key.Label(), Price: &p})
	}
	return result, nil
}

// IsLegal проверяет, входит ли продолжительность в легальный набор лодки
func (s *Service) IsLegal(boatID string, key domain.DurationKey) (bool, error) {
	keys, err := s.catalog.AvailableDurations(boatID)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrBoatNotFound) {
			return false, ErrBoatNotFound
		}
		return false, fmt.Errorf("%w: IsLegal: %v", ErrInternal, err)
	}
	for _, k := range keys {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}

// IsLegalForFilter проверяет продолжительность против категории прав
// (когда лодка еще не выбрана)
func IsLegalForFilter(requiresLicense bool, key domain.DurationKey) bool {
	for _, k := range domain.DurationsForLicense(requiresLicense) {
		if k == key {
			return true
		}
	}
	return false
}
