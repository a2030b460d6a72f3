package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to domain.ReservationStatus
	}{
		{domain.StatusConfirmed, domain.StatusInProgress},
		{domain.StatusConfirmed, domain.StatusNoShow},
		{domain.StatusInProgress, domain.StatusCompleted},
	}

	for _, tt := range allowed {
		assert.True(t, canTransition(tt.from, tt.to), "%s -> %s should be allowed", tt.from, tt.to)
	}

	forbidden := []struct {
		from, to domain.ReservationStatus
	}{
		// Подтверждение идёт только через сверку платежей
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusPending, domain.StatusInProgress},
		{domain.StatusPending, domain.StatusCompleted},
		{domain.StatusPending, domain.StatusNoShow},
		{domain.StatusConfirmed, domain.StatusCompleted},
		{domain.StatusConfirmed, domain.StatusPending},
		{domain.StatusInProgress, domain.StatusNoShow},
		// Терминальные статусы переходов не имеют
		{domain.StatusCompleted, domain.StatusInProgress},
		{domain.StatusCancelled, domain.StatusPending},
		{domain.StatusNoShow, domain.StatusConfirmed},
		// Отмена идёт через Cancel, а не через смену статуса
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusCancelled},
	}

	for _, tt := range forbidden {
		assert.False(t, canTransition(tt.from, tt.to), "%s -> %s should be forbidden", tt.from, tt.to)
	}
}
