package service

import (
	"context"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/config"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/hotel"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
	"github.com/IOVASCON/projeto-csv-super/pkg/logger"
	"github.com/IOVASCON/projeto-csv-super/pkg/metrics"
)

// HotelParams describes a hotel-mode run.
type HotelParams = hotel.Params

const hoursPerDay = 24

// GenerateHotel simulates every day of p and returns the stays in date
// order.
func (r *Runner) GenerateHotel(ctx context.Context, p HotelParams) ([]model.HotelStay, error) {
	days := 0
	if !p.End.Before(p.Start) {
		days = int(p.End.Sub(p.Start).Hours()/hoursPerDay) + 1
	}
	bar := r.newBar(days, "days")

	src := r.source()
	sim := hotel.New(src, r.providers(src), hotel.WithDayObserver(func(d hotel.DayReport) {
		metrics.RecordHotelDay(d.Stays, d.Exhausted)
		if d.Exhausted {
			r.logger.Debug(ctx, "rooms exhausted",
				logger.String("date", d.Date.Format(model.DateLayout)),
				logger.Int("stays", d.Stays),
			)
		}
		tick(bar)
	}))

	start := time.Now()
	stays, err := sim.Simulate(ctx, p)
	if err != nil {
		return nil, err
	}
	metrics.ObserveGenerationDuration(config.ModeHotel, time.Since(start))
	return stays, nil
}
