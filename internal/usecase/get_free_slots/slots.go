package get_free_slots

import (
	"sort"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// computeFreeIntervals вычисляет свободные промежутки внутри окна работы зоны.
// Курсор идёт от времени открытия: каждое занимающее корт бронирование
// закрывает промежуток перед собой и передвигает курсор на свой конец,
// последний промежуток тянется до времени закрытия.
//
// Примеры (окно 08:00-22:00):
// - Нет бронирований → один промежуток 08:00-22:00
// - Бронирование 10:00-11:00 → промежутки 08:00-10:00 и 11:00-22:00
// - Бронирования 08:00-09:00 и 09:00-10:00 → один промежуток 10:00-22:00
func computeFreeIntervals(
	openTime, closeTime types.TimeString,
	reservations []*domain.Reservation,
) []domain.FreeInterval {
	// Оставляем только занимающие корт бронирования
	blocking := make([]*domain.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if res.BlocksCourt() {
			blocking = append(blocking, res)
		}
	}

	// Сортируем по времени начала
	sort.Slice(blocking, func(i, j int) bool {
		return blocking[i].StartTime.IsBefore(blocking[j].StartTime)
	})

	intervals := make([]domain.FreeInterval, 0)
	cursor := openTime

	for _, res := range blocking {
		// Бронирование целиком за пределами окна не влияет на курсор
		if !res.EndTime.IsAfter(cursor) || !res.StartTime.IsBefore(closeTime) {
			continue
		}

		// Промежуток между курсором и началом бронирования
		if cursor.IsBefore(res.StartTime) {
			end := res.StartTime
			if closeTime.IsBefore(end) {
				end = closeTime
			}
			interval := domain.FreeInterval{Start: cursor, End: end}
			if !interval.IsEmpty() {
				intervals = append(intervals, interval)
			}
		}

		// Передвигаем курсор на конец бронирования
		cursor = res.EndTime

		if !cursor.IsBefore(closeTime) {
			return intervals
		}
	}

	// Последний промежуток до закрытия
	final := domain.FreeInterval{Start: cursor, End: closeTime}
	if !final.IsEmpty() {
		intervals = append(intervals, final)
	}

	return intervals
}

// carveSlots нарезает свободные промежутки на блоки фиксированной длины.
// Остаток короче блока отбрасывается: промежуток 10:00-10:50 при шаге 30
// даёт единственный слот 10:00-10:30.
func carveSlots(intervals []domain.FreeInterval, slotDuration int) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for _, interval := range intervals {
		cursor := interval.Start

		for {
			end, err := cursor.AddMinutes(slotDuration)
			if err != nil || end.IsAfter(interval.End) {
				break
			}

			slots = append(slots, domain.Slot{
				Start:           cursor,
				End:             end,
				DurationMinutes: slotDuration,
			})

			cursor = end
		}
	}

	return slots
}
