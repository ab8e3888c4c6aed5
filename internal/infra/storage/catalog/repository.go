package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
	"github.com/m04kA/BRS-PricingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога лодок.
// Каталог читается один раз при старте сервиса; записи репозиторий не поддерживает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBoats загружает все тарифные профили лодок: атрибуты, сезонные
// тарифные таблицы и список опций
func (r *Repository) ListBoats(ctx context.Context) ([]*domain.BoatPricingProfile, error) {
	boats, err := r.listBoatRows(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.attachSeasonPrices(ctx, boats); err != nil {
		return nil, err
	}

	if err := r.attachExtras(ctx, boats); err != nil {
		return nil, err
	}

	result := make([]*domain.BoatPricingProfile, 0, len(boats))
	for _, id := range sortedBoatIDs(boats) {
		result = append(result, boats[id])
	}
	return result, nil
}

func (r *Repository) listBoatRows(ctx context.Context) (map[string]*domain.BoatPricingProfile, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"requires_license",
		"capacity",
		"deposit",
	).
		From("boats").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBoats - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBoats - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boats := make(map[string]*domain.BoatPricingProfile)
	for rows.Next() {
		boat := &domain.BoatPricingProfile{
			Pricing: make(map[domain.Season]domain.SeasonPricing),
		}
		if err := rows.Scan(
			&boat.ID,
			&boat.Name,
			&boat.RequiresLicense,
			&boat.Capacity,
			&boat.Deposit,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBoats - scan boat: %v", ErrScanRow, err)
		}
		boats[boat.ID] = boat
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBoats - iterate boats: %v", ErrExecQuery, err)
	}

	return boats, nil
}

func (r *Repository) attachSeasonPrices(ctx context.Context, boats map[string]*domain.BoatPricingProfile) error {
	query, args, err := psqlbuilder.Select(
		"boat_id",
		"season",
		"period_label",
		"duration_key",
		"price",
	).
		From("boat_season_prices").
		OrderBy("boat_id", "season", "duration_key").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachSeasonPrices - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSeasonPrices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			boatID      string
			season      string
			periodLabel string
			durationKey string
			price       decimal.Decimal
		)
		if err := rows.Scan(&boatID, &season, &periodLabel, &durationKey, &price); err != nil {
			return fmt.Errorf("%w: attachSeasonPrices - scan price: %v", ErrScanRow, err)
		}

		boat, ok := boats[boatID]
		if !ok {
			// Цена без лодки - мусорная строка, каталог неконсистентен
			return fmt.Errorf("%w: price row references unknown boat %s", ErrInvalidRow, boatID)
		}

		s := domain.Season(season)
		if !s.Valid() {
			return fmt.Errorf("%w: unknown season %q for boat %s", ErrInvalidRow, season, boatID)
		}

		k := domain.DurationKey(durationKey)
		if !k.Valid() {
			return fmt.Errorf("%w: unknown duration key %q for boat %s", ErrInvalidRow, durationKey, boatID)
		}

		pricing, ok := boat.Pricing[s]
		if !ok {
			pricing = domain.SeasonPricing{
				PeriodLabel: periodLabel,
				Prices:      make(map[domain.DurationKey]decimal.Decimal),
			}
		}
		pricing.Prices[k] = price
		boat.Pricing[s] = pricing
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSeasonPrices - iterate prices: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) attachExtras(ctx context.Context, boats map[string]*domain.BoatPricingProfile) error {
	query, args, err := psqlbuilder.Select(
		"boat_id",
		"name",
		"price",
		"icon",
	).
		From("boat_extras").
		OrderBy("boat_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachExtras - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachExtras - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			boatID string
			extra  domain.ExtraItem
		)
		if err := rows.Scan(&boatID, &extra.Name, &extra.Price, &extra.Icon); err != nil {
			return fmt.Errorf("%w: attachExtras - scan extra: %v", ErrScanRow, err)
		}

		boat, ok := boats[boatID]
		if !ok {
			return fmt.Errorf("%w: extra row references unknown boat %s", ErrInvalidRow, boatID)
		}
		boat.Extras = append(boat.Extras, extra)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachExtras - iterate extras: %v", ErrExecQuery, err)
	}
	return nil
}

// ListPacks загружает все паки опций вместе с составом
func (r *Repository) ListPacks(ctx context.Context) ([]*domain.ExtraPack, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"localized_name",
		"bundle_price",
	).
		From("extra_packs").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPacks - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPacks - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packsByID := make(map[string]*domain.ExtraPack)
	var packs []*domain.ExtraPack
	for rows.Next() {
		pack := &domain.ExtraPack{}
		if err := rows.Scan(&pack.ID, &pack.Name, &pack.LocalizedName, &pack.BundlePrice); err != nil {
			return nil, fmt.Errorf("%w: ListPacks - scan pack: %v", ErrScanRow, err)
		}
		packsByID[pack.ID] = pack
		packs = append(packs, pack)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPacks - iterate packs: %v", ErrExecQuery, err)
	}

	if err := r.attachPackItems(ctx, packsByID); err != nil {
		return nil, err
	}

	return packs, nil
}

func (r *Repository) attachPackItems(ctx context.Context, packs map[string]*domain.ExtraPack) error {
	query, args, err := psqlbuilder.Select(
		"pack_id",
		"extra_name",
	).
		From("extra_pack_items").
		OrderBy("pack_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachPackItems - build select: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachPackItems - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var packID, extraName string
		if err := rows.Scan(&packID, &extraName); err != nil {
			return fmt.Errorf("%w: attachPackItems - scan item: %v", ErrScanRow, err)
		}

		pack, ok := packs[packID]
		if !ok {
			return fmt.Errorf("%w: pack item references unknown pack %s", ErrInvalidRow, packID)
		}
		pack.ExtraNames = append(pack.ExtraNames, extraName)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachPackItems - iterate items: %v", ErrExecQuery, err)
	}
	return nil
}

func sortedBoatIDs(boats map[string]*domain.BoatPricingProfile) []string {
	ids := make([]string, 0, len(boats))
	for id := range boats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
