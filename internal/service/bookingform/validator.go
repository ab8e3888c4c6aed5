package bookingform

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/BRS-PricingService/internal/domain"
)

// Сообщения об ошибках полей формы
const (
	msgNameRequired     = "укажите имя"
	msgEmailRequired    = "укажите email"
	msgEmailInvalid     = "некорректный email"
	msgPhoneRequired    = "укажите телефон"
	msgPhoneInvalid     = "телефон должен содержать только цифры"
	msgDateRequired     = "выберите дату"
	msgDateInPast       = "дата не может быть в прошлом"
	msgBoatRequired     = "выберите лодку"
	msgDurationRequired = "выберите продолжительность"
	msgTimeRequired     = "выберите время начала"
	msgPeopleRequired   = "укажите количество человек"
	msgPeopleOutOfRange = "количество человек вне допустимого диапазона"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

// Input данные формы бронирования для валидации
type Input struct {
	Contact  domain.ContactDetails
	Date     time.Time
	BoatID   string
	Duration domain.DurationKey

	// Capacity вместимость выбранной лодки; 0, если лодка не выбрана
	// (тогда диапазон количества человек не проверяется сверху)
	Capacity int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Validator синхронная валидация полей формы бронирования.
// Предикаты чистые; видимость ошибок управляется состоянием touched
// и не влияет на расчет цены.
type Validator struct {
	timeProvider TimeProvider
}

// NewValidator создает валидатор формы
func NewValidator() *Validator {
	return &Validator{timeProvider: &RealTimeProvider{}}
}

// FieldError возвращает текст ошибки поля или пустую строку, если поле валидно.
// Не зависит от touched-состояния.
func (v *Validator) FieldError(field string, in *Input) string {
	switch field {
	case domain.FieldName:
		if strings.TrimSpace(in.Contact.Name) == "" {
			return msgNameRequired
		}
	case domain.FieldEmail:
		email := strings.TrimSpace(in.Contact.Email)
		if email == "" {
			return msgEmailRequired
		}
		if !emailPattern.MatchString(email) {
			return msgEmailInvalid
		}
	case domain.FieldPhone:
		phone := strings.TrimSpace(in.Contact.Phone)
		if phone == "" {
			return msgPhoneRequired
		}
		if !phonePattern.MatchString(phone) {
			return msgPhoneInvalid
		}
	case domain.FieldDate:
		if in.Date.IsZero() {
			return msgDateRequired
		}
		if dateBeforeToday(in.Date, v.timeProvider.Now()) {
			return msgDateInPast
		}
	case domain.FieldBoat:
		if in.BoatID == "" {
			return msgBoatRequired
		}
	case domain.FieldDuration:
		if in.Duration == "" {
			return msgDurationRequired
		}
	case domain.FieldStartTime:
		if strings.TrimSpace(in.Contact.StartTime) == "" {
			return msgTimeRequired
		}
	case domain.FieldPeopleCount:
		if in.Contact.PeopleCount == 0 {
			return msgPeopleRequired
		}
		if in.Contact.PeopleCount < domain.MinPeopleCount {
			return msgPeopleOutOfRange
		}
		if in.Capacity > 0 && in.Contact.PeopleCount > in.Capacity {
			return msgPeopleOutOfRange
		}
	}
	return ""
}

// ShowFieldError возвращает текст ошибки поля только если поле тронуто.
// До blur и до попытки отправки ошибки не показываются.
func (v *Validator) ShowFieldError(field string, in *Input, state *domain.FieldValidationState) string {
	if !state.IsTouched(field) {
		return ""
	}
	return v.FieldError(field, in)
}

// ValidateAll проверяет все поля и возвращает ошибки в порядке domain.AllFields.
// Пустая карта означает валидную форму.
func (v *Validator) ValidateAll(in *Input) map[string]string {
	result := make(map[string]string)
	for _, field := range domain.AllFields {
		if msg := v.FieldError(field, in); msg != "" {
			result[field] = msg
		}
	}
	return result
}

// dateBeforeToday сравнивает только даты, без времени
func dateBeforeToday(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
