package facilityservice

// Court модель корта из FacilityService
type Court struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	HourlyRate  float64 `json:"hourly_rate"`
	Capacity    int     `json:"capacity"`
	SurfaceType string  `json:"surface_type"`
	Covered     bool    `json:"covered"`
	Active      bool    `json:"active"`
	Area        Area    `json:"area"`
}

// Area модель спортивной зоны, которой принадлежит корт.
// OpenTime/CloseTime могут отсутствовать, если расписание зоны не настроено.
type Area struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	OpenTime  *string `json:"open_time,omitempty"`  // "HH:MM"
	CloseTime *string `json:"close_time,omitempty"` // "HH:MM"
}

// HasOperatingHours возвращает true, если у зоны настроены часы работы
func (a *Area) HasOperatingHours() bool {
	return a.OpenTime != nil && a.CloseTime != nil
}

// Discipline модель спортивной дисциплины из FacilityService
type Discipline struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ErrorResponse модель ошибки от FacilityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
