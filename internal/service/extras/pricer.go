package extras

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Pricer считает суммарную стоимость выбранных опций.
// Ключевой инвариант: ни одна опция не оплачивается дважды - опции,
// входящие в выбранный пак, уже оплачены ценой пака.
type Pricer struct{}

// NewPricer создает новый экземпляр прайсера опций
func NewPricer() *Pricer {
	return &Pricer{}
}

// Price возвращает стоимость опций выбора.
// С паком: цена пака + индивидуально выбранные опции вне пака.
// Без пака: простая сумма индивидуально выбранных опций.
// pack может быть nil только если selection.PackID пуст.
func (p *Pricer) Price(boat *domain.BoatPricingProfile, selection *domain.Selection, pack *domain.ExtraPack) (decimal.Decimal, error) {
	if selection.HasPack() {
		if pack == nil || pack.ID != selection.PackID {
			return decimal.Decimal{}, fmt.Errorf("%w: pack=%s", ErrUnknownPack, selection.PackID)
		}
	} else {
		pack = nil
	}

	total := decimal.Zero
	if pack != nil {
		total = pack.BundlePrice
	}

	for name := range selection.ExtraNames {
		if pack != nil && pack.Contains(name) {
			// Опция покрыта паком - не доплачиваем
			continue
		}

		extra, ok := boat.ExtraByName(name)
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: extra=%s boat=%s", ErrUnknownExtra, name, boat.ID)
		}
		total = total.Add(extra.Price)
	}

	return total, nil
}
