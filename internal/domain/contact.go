package domain

// ContactDetails контактные данные формы бронирования.
// Заполняются пользователем, валидируются перед отправкой.
type ContactDetails struct {
	Name        string
	Email       string
	Phone       string
	StartTime   string // время начала аренды, HH:MM
	PeopleCount int
}

// Имена полей формы бронирования
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldDate        = "date"
	FieldBoat        = "boat"
	FieldDuration    = "duration"
	FieldStartTime   = "time"
	FieldPeopleCount = "peopleCount"
)

// AllFields упорядоченный список полей формы; порядок определяет,
// какая ошибка считается первой при отправке
var AllFields = []string{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldDate,
	FieldBoat,
	FieldDuration,
	FieldStartTime,
	FieldPeopleCount,
}

// FieldValidationState состояние видимости ошибок полей формы.
// Ошибка показывается только для "тронутых" полей; на цену не влияет.
type FieldValidationState struct {
	touched map[string]bool
}

// NewFieldValidationState создает состояние, где все поля не тронуты
func NewFieldValidationState() *FieldValidationState {
	return &FieldValidationState{touched: make(map[string]bool)}
}

// Touch отмечает поле как тронутое (после blur)
func (s *FieldValidationState) Touch(field string) {
	s.touched[field] = true
}

// TouchAll отмечает все поля тронутыми разом (попытка отправки формы)
func (s *FieldValidationState) TouchAll() {
	for _, f := range AllFields {
		s.touched[f] = true
	}
}

// IsTouched возвращает true, если поле было тронуто
func (s *FieldValidationState) IsTouched(field string) bool {
	return s.touched[field]
}

// Snapshot возвращает копию состояния для отдачи наружу
func (s *FieldValidationState) Snapshot() map[string]bool {
	snapshot := make(map[string]bool, len(s.touched))
	for f, t := range s.touched {
		snapshot[f] = t
	}
	return snapshot
}
