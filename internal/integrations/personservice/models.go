package personservice

// PersonKind тип персоны в системе
type PersonKind string

const (
	KindClient PersonKind = "client"
	KindGuest  PersonKind = "guest"
	KindStaff  PersonKind = "staff"
	KindAdmin  PersonKind = "admin"
)

// Person модель персоны из PersonService.
// Клиенты, гости, персонал и администраторы разделяются полем Kind,
// а не иерархией типов.
type Person struct {
	ID          int64      `json:"id"`
	DisplayName string     `json:"display_name"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Kind        PersonKind `json:"kind"`
	Active      bool       `json:"active"`
}

// IsClient возвращает true, если персона - клиент (может владеть бронированием)
func (p *Person) IsClient() bool {
	return p.Kind == KindClient
}

// IsGuest возвращает true, если персона - приглашаемый гость
func (p *Person) IsGuest() bool {
	return p.Kind == KindGuest
}

// ErrorResponse модель ошибки от PersonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
