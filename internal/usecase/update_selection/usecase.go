package update_selection

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	sessionsSvc "github.com/m04kA/BRS-PricingService/internal/service/sessions"
)

// UseCase применяет изменения выбора пользователя через детерминированный
// пайплайн зависимых сбросов: смена фильтра прав или лодки пересчитывает
// легальный набор продолжительностей и сбрасывает нелегальную текущую;
// смена даты набор не меняет, только цены.
type UseCase struct {
	store   SessionStore
	catalog Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute применяет изменения к выбору сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSelection: validation failed: %v", err)
		return nil, err
	}

	session, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessionsSvc.ErrSessionNotFound) {
			uc.logger.Warn("UpdateSelection: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: get session: %v", ErrInternal, err)
	}

	// Смена лодки проверяется до захвата состояния сессии
	var newBoat *domain.BoatPricingProfile
	if req.BoatID != nil && *req.BoatID != "" {
		newBoat, err = uc.catalog.BoatByID(*req.BoatID)
		if err != nil {
			uc.logger.Warn("UpdateSelection: boat %s not found", *req.BoatID)
			return nil, ErrBoatNotFound
		}
	}

	var (
		resp    *Response
		execErr error
	)

	session.Update(func(st *sessionsSvc.State) {
		resp, execErr = uc.applyPipeline(st, req, newBoat)
	})

	if execErr != nil {
		return nil, execErr
	}

	uc.logger.Info("UpdateSelection: session=%s boat=%s duration=%s pack=%s cleared=%v",
		req.SessionID, resp.BoatID, resp.DurationKey, resp.PackID, resp.ClearedFields)
	return resp, nil
}

// applyPipeline выполняет упорядоченные шаги изменения выбора.
// Вызывается под мьютексом сессии.
func (uc *UseCase) applyPipeline(st *sessionsSvc.State, req *Request, newBoat *domain.BoatPricingProfile) (*Response, error) {
	sel := st.Selection
	var cleared []string

	// Шаг 1: смена фильтра по категории прав.
	// Лодка, не подходящая под новый фильтр, сбрасывается.
	if req.LicenseFilter != nil {
		sel.LicenseOnly = req.LicenseFilter
		if sel.BoatID != "" {
			boat, err := uc.catalog.BoatByID(sel.BoatID)
			if err != nil {
				return nil, fmt.Errorf("%w: current boat lookup: %v", ErrInternal, err)
			}
			if boat.RequiresLicense != *req.LicenseFilter {
				sel.BoatID = ""
				cleared = append(cleared, domain.FieldBoat)
				if sel.PackID != "" || len(sel.ExtraNames) > 0 {
					sel.PackID = ""
					sel.ExtraNames = make(map[string]struct{})
					cleared = append(cleared, "extras")
				}
			}
		}
	}

	// Шаг 2: смена лодки. Пак и опции принадлежат конкретной лодке
	// и при смене сбрасываются.
	if newBoat != nil && newBoat.ID != sel.BoatID {
		sel.BoatID = newBoat.ID
		if sel.PackID != "" || len(sel.ExtraNames) > 0 {
			sel.PackID = ""
			sel.ExtraNames = make(map[string]struct{})
			cleared = append(cleared, "extras")
		}
	}

	// Шаг 3: явная смена продолжительности (до проверки легальности)
	if req.DurationKey != nil {
		sel.DurationKey = *req.DurationKey
	}

	// Шаг 4: проверка легальности текущей продолжительности против
	// актуального набора. Нелегальная сбрасывается, не считаясь ошибкой.
	if sel.DurationKey != "" {
		legal, err := uc.durationLegal(sel)
		if err != nil {
			return nil, err
		}
		if !legal {
			sel.DurationKey = ""
			cleared = append(cleared, domain.FieldDuration)
		}
	}

	// Шаг 5: смена даты. Набор продолжительностей от даты не зависит,
	// пересчитываются только цены (при построении расчета).
	if req.Date != nil {
		sel.Date = *req.Date
	}

	// Шаг 6: операции с паком и опциями
	if req.DeselectPack {
		// Опции пака были включены выбором пака и уходят вместе с ним;
		// индивидуально выбранные остаются
		sel.PackID = ""
	}

	if req.SelectPackID != nil && *req.SelectPackID != "" {
		if sel.BoatID == "" {
			return nil, fmt.Errorf("%w: pack selected without a boat", ErrInvalidInput)
		}
		pack, err := uc.catalog.PackForBoat(sel.BoatID, *req.SelectPackID)
		if err != nil {
			return nil, ErrPackNotFound
		}
		sel.PackID = pack.ID
	}

	if req.ToggleExtra != nil {
		if err := uc.toggleExtra(sel, *req.ToggleExtra); err != nil {
			return nil, err
		}
	}

	return buildResponse(sel, cleared), nil
}

// durationLegal проверяет текущую продолжительность против лодки,
// а при отсутствии лодки - против фильтра прав
func (uc *UseCase) durationLegal(sel *domain.Selection) (bool, error) {
	if sel.BoatID != "" {
		keys, err := uc.catalog.AvailableDurations(sel.BoatID)
		if err != nil {
			return false, fmt.Errorf("%w: available durations: %v", ErrInternal, err)
		}
		for _, k := range keys {
			if k == sel.DurationKey {
				return true, nil
			}
		}
		return false, nil
	}

	if sel.LicenseOnly != nil {
		for _, k := range domain.DurationsForLicense(*sel.LicenseOnly) {
			if k == sel.DurationKey {
				return true, nil
			}
		}
		return false, nil
	}

	// Ни лодки, ни фильтра - ограничений нет
	return sel.DurationKey.Valid(), nil
}

// toggleExtra переключает индивидуальный выбор опции.
// Опция активного пака закреплена ("locked-on"): переключение - no-op.
func (uc *UseCase) toggleExtra(sel *domain.Selection, name string) error {
	if sel.BoatID == "" {
		return fmt.Errorf("%w: extra toggled without a boat", ErrInvalidInput)
	}

	boat, err := uc.catalog.BoatByID(sel.BoatID)
	if err != nil {
		return fmt.Errorf("%w: boat lookup: %v", ErrInternal, err)
	}
	if !boat.HasExtra(name) {
		return ErrExtraNotFound
	}

	if sel.HasPack() {
		pack, err := uc.catalog.PackForBoat(sel.BoatID, sel.PackID)
		if err != nil {
			return fmt.Errorf("%w: pack lookup: %v", ErrInternal, err)
		}
		if pack.Contains(name) {
			return nil
		}
	}

	if sel.HasExtra(name) {
		delete(sel.ExtraNames, name)
	} else {
		sel.ExtraNames[name] = struct{}{}
	}
	return nil
}

func buildResponse(sel *domain.Selection, cleared []string) *Response {
	extras := make([]string, 0, len(sel.ExtraNames))
	for name := range sel.ExtraNames {
		extras = append(extras, name)
	}
	sort.Strings(extras)

	resp := &Response{
		BoatID:        sel.BoatID,
		DurationKey:   sel.DurationKey,
		PackID:        sel.PackID,
		ExtraNames:    extras,
		ClearedFields: cleared,
	}
	if !sel.Date.IsZero() {
		d := sel.Date
		resp.Date = &d
	}
	return resp
}
