package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/economit/backoffice/pkg/logger"
)

func newTestScheduler(day, hour int) *PayrollScheduler {
	return NewPayrollScheduler(nil, day, hour, logger.Nop())
}

func TestDue_DisparaSoloEnDiaYHoraConfigurados(t *testing.T) {
	s := newTestScheduler(1, 9)

	enVentana := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)
	assert.True(t, s.due(enVentana, time.Time{}))

	otroDia := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	assert.False(t, s.due(otroDia, time.Time{}))

	otraHora := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	assert.False(t, s.due(otraHora, time.Time{}))
}

func TestDue_NoRepiteDentroDeLaMismaVentana(t *testing.T) {
	s := newTestScheduler(1, 9)

	primera := time.Date(2026, time.March, 1, 9, 5, 0, 0, time.UTC)
	assert.True(t, s.due(primera, time.Time{}))

	// Tick siguiente dentro de la misma hora: ya corrida.
	segunda := time.Date(2026, time.March, 1, 9, 6, 0, 0, time.UTC)
	assert.False(t, s.due(segunda, primera))
}

func TestDue_VuelveADispararElMesSiguiente(t *testing.T) {
	s := newTestScheduler(1, 9)

	marzo := time.Date(2026, time.March, 1, 9, 5, 0, 0, time.UTC)
	abril := time.Date(2026, time.April, 1, 9, 5, 0, 0, time.UTC)

	assert.True(t, s.due(abril, marzo))
}
