package sessions

import (
	"sync"
	"time"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// State изменяемое состояние одной сессии бронирования.
// Доступ только через Session.Update / Session.Read.
type State struct {
	Selection *domain.Selection
	Contact   domain.ContactDetails
	Fields    *domain.FieldValidationState

	// Promotion активный промокод; не более одного на сессию
	Promotion *domain.PromotionCode
}

// ValidationToken токен одной попытки валидации промокода.
// Сравнение поколения отбрасывает устаревшие ответы внешнего сервиса
// при быстрой повторной отправке кодов.
type ValidationToken struct {
	Code       string
	Generation uint64
}

// Session сессия бронирования. Принадлежит одному пользователю;
// все операции сериализуются мьютексом сессии.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	state    State

	// promoGeneration растет при каждой новой валидации промокода
	promoGeneration uint64

	// pendingPromoCode код, валидация которого выполняется сейчас
	// (пустая строка - валидаций в полете нет)
	pendingPromoCode string
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		state: State{
			Selection: domain.NewSelection(),
			Fields:    domain.NewFieldValidationState(),
		},
	}
}

// Update выполняет fn над состоянием сессии под ее мьютексом
func (s *Session) Update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Read выполняет fn над состоянием сессии под мьютексом.
// fn не должна сохранять ссылки на внутренние структуры.
func (s *Session) Read(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// BeginPromotionValidation начинает валидацию промокода.
// Новый код вытесняет незавершенную валидацию предыдущего (ее результат
// будет отброшен по токену); повторная отправка того же кода, пока он
// в полете, отклоняется.
func (s *Session) BeginPromotionValidation(code string) (ValidationToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingPromoCode != "" && s.pendingPromoCode == code {
		return ValidationToken{}, ErrValidationInFlight
	}

	s.promoGeneration++
	s.pendingPromoCode = code

	return ValidationToken{
		Code:       code,
		Generation: s.promoGeneration,
	}, nil
}

// CompletePromotionValidation завершает валидацию. Результат применяется
// только если токен соответствует последней начатой валидации; устаревший
// результат отбрасывается, и метод возвращает false.
// promo == nil означает, что код не прошел валидацию.
func (s *Session) CompletePromotionValidation(token ValidationToken, promo *domain.PromotionCode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token.Generation != s.promoGeneration {
		return false
	}

	s.pendingPromoCode = ""
	if promo != nil {
		// Новый промокод вытесняет предыдущий: активен всегда не более одного
		s.state.Promotion = promo
	}
	return true
}

// ClearPromotion снимает активный промокод. Ранее построенные расчеты
// не пересматриваются - влияет только на последующие.
func (s *Session) ClearPromotion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Promotion = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
