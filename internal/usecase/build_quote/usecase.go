package build_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	catalogSvc "github.com/m04kA/BRS-PricingService/internal/service/catalog"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// UseCase строит PricedBookingSummary из текущего выбора сессии.
// Расчет чистый и идемпотентный: одинаковый выбор дает структурно
// одинаковый итог; результат не кэшируется между изменениями входных данных.
// Ошибки сезона, цены и легальности продолжительности фатальны -
// итог не строится ("fail closed").
type UseCase struct {
	store      SessionStore
	catalog    Catalog
	extras     ExtrasPricer
	discounter DiscountCalculator
	metrics    QuoteMetrics
	logger     Logger
}

// Метки исхода построения расчета
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	catalog Catalog,
	extras ExtrasPricer,
	discounter DiscountCalculator,
	metrics QuoteMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:      store,
		catalog:    catalog,
		extras:     extras,
		discounter: discounter,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute строит расчет для текущего состояния сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			uc.logger.Warn("BuildQuote: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	// Снимок состояния под мьютексом; сам расчет выполняется над копией
	var (
		selection domain.Selection
		promo     *domain.PromotionCode
	)
	session.Read(func(st *sessionsSvc.State) {
		selection = *st.Selection
		selection.ExtraNames = make(map[string]struct{}, len(st.Selection.ExtraNames))
		for name := range st.Selection.ExtraNames {
			selection.ExtraNames[name] = struct{}{}
		}
		if st.Promotion != nil {
			p := *st.Promotion
			promo = &p
		}
	})

	resp, err := uc.build(&selection, promo)
	if err != nil {
		uc.metrics.ObserveQuoteBuilt(resultFailure)
		return nil, err
	}

	uc.metrics.ObserveQuoteBuilt(resultSuccess)
	return resp, nil
}

// build считает итог для зафиксированного выбора
func (uc *UseCase) build(sel *domain.Selection, promo *domain.PromotionCode) (*Response, error) {
	// 1. Полнота выбора
	if sel.BoatID == "" || sel.Date.IsZero() || sel.DurationKey == "" {
		return nil, ErrSelectionIncomplete
	}

	// 2. Сезон: ошибка пробрасывается, молчаливого дефолта нет
	season, err := domain.ResolveSeason(sel.Date)
	if err != nil {
		return nil, ErrOutOfSeason
	}

	boat, err := uc.catalog.BoatByID(sel.BoatID)
	if err != nil {
		uc.logger.Error("BuildQuote: boat %s not found: %v", sel.BoatID, err)
		return nil, fmt.Errorf("%w: boat lookup: %v", ErrInternal, err)
	}

	// 3. Защитная проверка легальности продолжительности
	keys, err := uc.catalog.AvailableDurations(sel.BoatID)
	if err != nil {
		return nil, fmt.Errorf("%w: available durations: %v", ErrInternal, err)
	}
	if !containsKey(keys, sel.DurationKey) {
		uc.logger.Warn("BuildQuote: illegal duration %s for boat %s", sel.DurationKey, sel.BoatID)
		return nil, ErrIllegalDuration
	}

	// 4. Базовая цена аренды
	basePrice, err := uc.catalog.PriceFor(sel.BoatID, season, sel.DurationKey)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrNoSuchPrice) {
			uc.logger.Error("BuildQuote: no price: boat=%s season=%s duration=%s",
				sel.BoatID, season, sel.DurationKey)
			return nil, ErrNoSuchPrice
		}
		return nil, fmt.Errorf("%w: price lookup: %v", ErrInternal, err)
	}

	// 5. Стоимость опций
	var pack *domain.ExtraPack
	if sel.HasPack() {
		pack, err = uc.catalog.PackForBoat(sel.BoatID, sel.PackID)
		if err != nil {
			uc.logger.Error("BuildQuote: pack %s not found for boat %s: %v", sel.PackID, sel.BoatID, err)
			return nil, fmt.Errorf("%w: pack lookup: %v", ErrInternal, err)
		}
	}

	extrasTotal, err := uc.extras.Price(boat, sel, pack)
	if err != nil {
		uc.logger.Error("BuildQuote: extras pricing failed: %v", err)
		return nil, fmt.Errorf("%w: extras pricing: %v", ErrInternal, err)
	}

	// 6. Промокод
	result, err := uc.discounter.Apply(promo, basePrice, extrasTotal)
	if err != nil {
		uc.logger.Error("BuildQuote: discount failed: %v", err)
		return nil, fmt.Errorf("%w: discount: %v", ErrInternal, err)
	}

	summary := domain.PricedBookingSummary{
		BoatID:      sel.BoatID,
		Season:      season,
		DurationKey: sel.DurationKey,
		BasePrice:   basePrice,
		ExtrasTotal: extrasTotal,
		Subtotal:    basePrice.Add(extrasTotal),
		Total:       result.Total,
	}

	if promo != nil {
		applied := &domain.AppliedPromotion{
			Kind:             promo.Kind,
			Code:             promo.Code,
			ComputedDiscount: result.ComputedDiscount,
		}
		switch promo.Kind {
		case domain.PromotionGiftCard:
			applied.Value = promo.RemainingValue
		case domain.PromotionPercentage:
			applied.Value = promo.Percentage
		}
		summary.Promotion = applied
	}

	return &Response{
		Summary:     summary,
		PeriodLabel: boat.Pricing[season].PeriodLabel,
		Deposit:     boat.Deposit,
	}, nil
}

func containsKey(keys []domain.DurationKey, key domain.DurationKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
