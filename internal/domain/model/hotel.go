package model

import "time"

// DailyExpenses are the five overhead components drawn once per hotel day.
type DailyExpenses struct {
	Fixed          float64
	Variable       float64
	Labor          float64
	Financial      float64
	Administrative float64
}

// Total sums the five components.
func (e DailyExpenses) Total() float64 {
	return e.Fixed + e.Variable + e.Labor + e.Financial + e.Administrative
}

// DailyAggregate holds the revenue-management figures computed at day
// close. Every stay of the same day carries an identical copy.
type DailyAggregate struct {
	Occupancy       float64 // percent of total rooms used
	RoomsUsed       int
	RoomRevenue     float64
	TotalRevenue    float64
	TotalCost       float64
	OperatingProfit float64
	ADR             float64
	RevPAR          float64
	TRevPAR         float64
	GOPPAR          float64
}

// HotelStay is one customer booking on one day.
type HotelStay struct {
	ID            int
	Date          time.Time
	HotelName     string
	TotalRooms    int
	CustomerName  string
	RoomType      string
	PaymentMethod string
	Rooms         int
	Nights        int
	NightlyRate   float64
	Subtotal      float64
	ExtraCharges  float64
	TotalPaid     float64
	Expenses      DailyExpenses
	Daily         DailyAggregate
}

// DateString renders Date with DateLayout.
func (s HotelStay) DateString() string {
	return s.Date.Format(DateLayout)
}
