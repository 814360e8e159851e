// Package hotel simulates a single hotel day by day: customer stays are
// drawn until the day's customer count or the room inventory runs out, then
// the day's revenue-management aggregates (occupancy, ADR, RevPAR, TRevPAR,
// GOPPAR) are computed and copied into every stay of that day.
package hotel

import (
	"context"
	"fmt"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
	"github.com/IOVASCON/projeto-csv-super/internal/fakedata"
)

// Stay and expense ranges.
const (
	minRoomsPerStay = 1
	maxRoomsPerStay = 2
	minNights       = 1
	maxNights       = 7
	minRate         = 50.0
	maxRate         = 300.0
	maxExtra        = 300.0

	minFixed, maxFixed         = 500.0, 5000.0
	minVariable, maxVariable   = 200.0, 2000.0
	minLabor, maxLabor         = 300.0, 3000.0
	minFinancial, maxFinancial = 50.0, 500.0
	minAdmin, maxAdmin         = 100.0, 1000.0

	percent = 100.0
)

//nolint:gochecknoglobals // categorical pools
var (
	roomTypes      = []string{"Standard", "Duplo", "Suite"}
	paymentMethods = []string{"Cartão de Crédito", "Dinheiro", "PIX", "Transferência"}
)

// Params describes one simulation run.
type Params struct {
	HotelName          string
	TotalRooms         int
	Start, End         time.Time
	MaxCustomersPerDay int
}

// DayReport summarizes a simulated day for observers.
type DayReport struct {
	Date      time.Time
	Stays     int
	Exhausted bool // rooms ran out before the drawn customer count
	Aggregate model.DailyAggregate
}

// Simulator generates stays. Not safe for concurrent use.
type Simulator struct {
	src   *drift.Source
	fake  fakedata.Provider
	onDay func(DayReport)
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithDayObserver registers a callback invoked after each day closes.
func WithDayObserver(fn func(DayReport)) Option {
	return func(s *Simulator) {
		s.onDay = fn
	}
}

// New creates a Simulator drawing from src and naming customers with fake.
func New(src *drift.Source, fake fakedata.Provider, opts ...Option) *Simulator {
	s := &Simulator{src: src, fake: fake}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate returns the stays for every day in [p.Start, p.End]. IDs run
// from 1 across the whole range. An inverted range fails before anything
// is generated.
func (s *Simulator) Simulate(ctx context.Context, p Params) ([]model.HotelStay, error) {
	if p.End.Before(p.Start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			p.Start.Format(model.DateLayout), p.End.Format(model.DateLayout))
	}
	if p.TotalRooms < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRooms, p.TotalRooms)
	}
	maxCustomers := max(1, p.MaxCustomersPerDay)

	var stays []model.HotelStay
	nextID := 1
	for day := p.Start; !day.After(p.End); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		daily, report := s.simulateDay(day, p, maxCustomers, nextID)
		nextID += len(daily)
		stays = append(stays, daily...)
		if s.onDay != nil {
			s.onDay(report)
		}
	}
	return stays, nil
}

func (s *Simulator) expenses() model.DailyExpenses {
	return model.DailyExpenses{
		Fixed:          drift.Round2(s.src.Uniform(minFixed, maxFixed)),
		Variable:       drift.Round2(s.src.Uniform(minVariable, maxVariable)),
		Labor:          drift.Round2(s.src.Uniform(minLabor, maxLabor)),
		Financial:      drift.Round2(s.src.Uniform(minFinancial, maxFinancial)),
		Administrative: drift.Round2(s.src.Uniform(minAdmin, maxAdmin)),
	}
}

func (s *Simulator) simulateDay(day time.Time, p Params, maxCustomers, firstID int) ([]model.HotelStay, DayReport) {
	exp := s.expenses()
	customers := s.src.SafeRangeInt(1, float64(maxCustomers))
	available := p.TotalRooms

	var (
		stays        []model.HotelStay
		roomRevenue  float64
		totalRevenue float64
		exhausted    bool
	)
	for i := 0; i < customers; i++ {
		if available <= 0 {
			exhausted = true
			break
		}

		rooms := min(s.src.SafeRangeInt(minRoomsPerStay, maxRoomsPerStay), available)
		st := model.HotelStay{
			ID:            firstID + len(stays),
			Date:          day,
			HotelName:     p.HotelName,
			TotalRooms:    p.TotalRooms,
			CustomerName:  s.fake.PersonName(),
			RoomType:      s.src.Pick(roomTypes),
			PaymentMethod: s.src.Pick(paymentMethods),
			Rooms:         rooms,
			Nights:        s.src.SafeRangeInt(minNights, maxNights),
			NightlyRate:   drift.Round2(s.src.Uniform(minRate, maxRate)),
			Expenses:      exp,
		}
		st.Subtotal = drift.Round2(float64(st.Rooms*st.Nights) * st.NightlyRate)
		st.ExtraCharges = drift.Round2(s.src.Uniform(0, maxExtra))
		st.TotalPaid = drift.Round2(st.Subtotal + st.ExtraCharges)

		available -= rooms
		roomRevenue += st.Subtotal
		totalRevenue += st.TotalPaid
		stays = append(stays, st)
	}

	agg := aggregate(p.TotalRooms, p.TotalRooms-available, roomRevenue, totalRevenue, exp.Total())
	for i := range stays {
		stays[i].Daily = agg
	}
	return stays, DayReport{Date: day, Stays: len(stays), Exhausted: exhausted, Aggregate: agg}
}

// aggregate computes the day-close figures. Every ratio is 0 when its
// divisor is 0.
func aggregate(totalRooms, used int, roomRevenue, totalRevenue, totalCost float64) model.DailyAggregate {
	profit := drift.Round2(totalRevenue - totalCost)
	r := float64(totalRooms)
	return model.DailyAggregate{
		Occupancy:       drift.Round2(drift.Ratio(float64(used), r) * percent),
		RoomsUsed:       used,
		RoomRevenue:     drift.Round2(roomRevenue),
		TotalRevenue:    drift.Round2(totalRevenue),
		TotalCost:       drift.Round2(totalCost),
		OperatingProfit: profit,
		ADR:             drift.Round2(drift.Ratio(roomRevenue, float64(used))),
		RevPAR:          drift.Round2(drift.Ratio(roomRevenue, r)),
		TRevPAR:         drift.Round2(drift.Ratio(totalRevenue, r)),
		GOPPAR:          drift.Round2(drift.Ratio(profit, r)),
	}
}
