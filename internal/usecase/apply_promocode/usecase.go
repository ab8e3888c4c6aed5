package apply_promocode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/internal/integrations/giftcards"
	"github.com/m04kA/BRS-PricingService/internal/integrations/promocodes"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// UseCase валидация промокода против двух внешних пространств кодов.
// Порядок фиксированный: сначала подарочные карты, затем скидочные коды;
// пространства считаются непересекающимися, при коллизии приоритет у карты.
// На сессию допускается одна валидация в полете; новый код вытесняет
// незавершенную валидацию предыдущего, устаревший результат отбрасывается
// по токену поколения.
type UseCase struct {
	store          SessionStore
	giftCardClient GiftCardClient
	discountClient DiscountCodeClient
	metrics        PromoMetrics
	logger         Logger
}

// lookupInvalid метка исхода для кода, не прошедшего валидацию
const lookupInvalid = "invalid"

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	giftCardClient GiftCardClient,
	discountClient DiscountCodeClient,
	metrics PromoMetrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:          store,
		giftCardClient: giftCardClient,
		discountClient: discountClient,
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute валидирует код и, если он действителен, делает его активным
// промокодом сессии (вытесняя предыдущий)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	code := normalizeCode(req.Code)
	if req.SessionID == "" || code == "" {
		return nil, fmt.Errorf("%w: sessionID and code are required", ErrInvalidInput)
	}

	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			uc.logger.Warn("ApplyPromocode: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	token, err := session.BeginPromotionValidation(code)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrValidationInFlight) {
			uc.logger.Info("ApplyPromocode: duplicate in-flight code for session %s", req.SessionID)
			return nil, ErrValidationInFlight
		}
		return nil, fmt.Errorf("%w: begin validation: %v", ErrInternal, err)
	}

	promo, err := uc.resolve(ctx, code)
	if err != nil {
		if errors.Is(err, ErrInvalidCode) {
			uc.metrics.ObservePromoLookup(lookupInvalid)
		}
		// Завершаем попытку без результата, чтобы не блокировать
		// последующие отправки этого же кода
		session.CompletePromotionValidation(token, nil)
		return nil, err
	}
	uc.metrics.ObservePromoLookup(string(promo.Kind))

	if !session.CompletePromotionValidation(token, promo) {
		uc.logger.Info("ApplyPromocode: stale result discarded: session=%s code=%s",
			req.SessionID, code)
		return nil, ErrSuperseded
	}

	uc.logger.Info("ApplyPromocode: session=%s code=%s kind=%s", req.SessionID, code, promo.Kind)
	return buildResponse(promo), nil
}

// resolve проверяет код в фиксированном порядке: подарочные карты, затем
// скидочные коды
func (uc *UseCase) resolve(ctx context.Context, code string) (*domain.PromotionCode, error) {
	card, err := uc.giftCardClient.Validate(ctx, code)
	if err == nil {
		promo := domain.NewGiftCard(card.Code, card.RemainingValue)
		return &promo, nil
	}
	if !errors.Is(err, giftcards.ErrCodeNotRecognized) {
		uc.logger.Error("ApplyPromocode: gift card validation failed: %v", err)
		return nil, fmt.Errorf("%w: gift card validation: %v", ErrInternal, err)
	}

	discount, err := uc.discountClient.Validate(ctx, code)
	if err == nil {
		promo := domain.NewPercentageDiscount(discount.Code, discount.Percentage)
		return &promo, nil
	}
	if !errors.Is(err, promocodes.ErrCodeNotRecognized) {
		uc.logger.Error("ApplyPromocode: discount code validation failed: %v", err)
		return nil, fmt.Errorf("%w: discount code validation: %v", ErrInternal, err)
	}

	return nil, ErrInvalidCode
}

// normalizeCode приводит код к каноничному виду: без пробелов, в верхнем регистре
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func buildResponse(promo *domain.PromotionCode) *Response {
	resp := &Response{
		Kind: promo.Kind,
		Code: promo.Code,
	}
	switch promo.Kind {
	case domain.PromotionGiftCard:
		resp.Value = promo.RemainingValue
	case domain.PromotionPercentage:
		resp.Value = promo.Percentage
	}
	return resp
}
