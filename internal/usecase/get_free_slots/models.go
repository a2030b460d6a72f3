package get_free_slots

import (
	"time"
)

// Request модель запроса свободных слотов корта на дату
type Request struct {
	CourtID int64     // ID корта
	Date    time.Time // Дата (без времени)
}

// FreeInterval свободный промежуток между бронированиями
type FreeInterval struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// Slot доступный для бронирования блок фиксированной длины
type Slot struct {
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "10:30"
	DurationMinutes int    `json:"durationMinutes"` // 30
	Label           string `json:"label"`           // "10:00 - 10:30"
}

// Response модель ответа со свободными интервалами и слотами
type Response struct {
	CourtID       int64          `json:"courtId"`
	Date          string         `json:"date"` // "2026-09-15"
	OpenTime      string         `json:"openTime"`
	CloseTime     string         `json:"closeTime"`
	FreeIntervals []FreeInterval `json:"freeIntervals"`
	Slots         []Slot         `json:"slots"`
}
