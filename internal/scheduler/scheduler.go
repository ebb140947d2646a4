// Package scheduler dispara la generación mensual de nómina en el día y la
// hora configurados, sin dependencias de cron externas.
package scheduler

import (
	"context"
	"time"

	"github.com/economit/backoffice/internal/application/usecase"
	"github.com/economit/backoffice/pkg/logger"
)

// PayrollScheduler corre en su propia goroutine y dispara la nómina una vez
// al mes. La deduplicación por día la da el índice único de transacciones,
// así que un disparo repetido (reinicio del proceso el mismo día) es inocuo.
type PayrollScheduler struct {
	payroll *usecase.PayrollUseCase
	day     int // día del mes (1-28)
	hour    int // hora local (0-23)
	log     *logger.Logger
	// now e interval se sobrescriben en tests
	now      func() time.Time
	interval time.Duration
}

// NewPayrollScheduler construye el scheduler. day debe venir validado por la
// configuración (1-28) para que exista en todos los meses.
func NewPayrollScheduler(payroll *usecase.PayrollUseCase, day, hour int, log *logger.Logger) *PayrollScheduler {
	return &PayrollScheduler{
		payroll:  payroll,
		day:      day,
		hour:     hour,
		log:      log,
		now:      time.Now,
		interval: time.Minute,
	}
}

// Start bloquea hasta que ctx se cancele. Revisa cada minuto si toca correr;
// la marca lastRun evita dispararla dos veces dentro de la misma hora.
func (s *PayrollScheduler) Start(ctx context.Context) {
	s.log.Info().Int("day", s.day).Int("hour", s.hour).Msg("Scheduler de nómina iniciado")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var lastRun time.Time
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Scheduler de nómina detenido")
			return
		case <-ticker.C:
			now := s.now()
			if !s.due(now, lastRun) {
				continue
			}
			lastRun = now
			s.run(ctx)
		}
	}
}

// due indica si el instante now cae en la ventana de disparo y aún no se
// corrió en esta ventana.
func (s *PayrollScheduler) due(now, lastRun time.Time) bool {
	if now.Day() != s.day || now.Hour() != s.hour {
		return false
	}
	// Ya corrida dentro de esta misma ventana (mismo día y hora).
	if !lastRun.IsZero() &&
		lastRun.Year() == now.Year() && lastRun.Month() == now.Month() &&
		lastRun.Day() == now.Day() && lastRun.Hour() == now.Hour() {
		return false
	}
	return true
}

func (s *PayrollScheduler) run(ctx context.Context) {
	s.log.Info().Msg("Disparando generación de nómina programada")
	res, err := s.payroll.Generate(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Corrida de nómina programada falló")
		return
	}
	s.log.Info().
		Int("generated", res.Generated).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("Corrida de nómina programada completada")
}
