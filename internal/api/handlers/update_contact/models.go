package update_contact

// UpdateContactRequest HTTP request model.
// Передаются только изменившиеся поля; Touched - поля, потерявшие фокус.
type UpdateContactRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	StartTime   *string  `json:"time,omitempty"`
	PeopleCount *int     `json:"peopleCount,omitempty"`
	Touched     []string `json:"touched,omitempty"`
}

// ContactResponse HTTP response model: видимые ошибки полей
type ContactResponse struct {
	// FieldErrors ошибки только для тронутых полей (поле -> сообщение)
	FieldErrors map[string]string `json:"fieldErrors"`
}
