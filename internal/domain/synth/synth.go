// Package synth builds KPI records. A record is either drawn fresh or
// evolved from the previous record of its chain: every drifted metric moves
// a bounded step away from its prior value, and derived metrics (profit,
// per-client ratios, forecasts, ROAS...) are always recomputed from the new
// draws.
package synth

import (
	"math"
	"time"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/drift"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
	"github.com/IOVASCON/projeto-csv-super/internal/domain/segment"
	"github.com/IOVASCON/projeto-csv-super/internal/fakedata"
)

const monthsPerYear = 12

// Synthesizer produces records for one chain. It is not safe for
// concurrent use.
type Synthesizer struct {
	src        *drift.Source
	fake       fakedata.Provider
	profile    Profile
	driftScale float64
	onFallback func(field string)
}

// New creates a Synthesizer drawing from src. Company, city and region
// names come from fake.
func New(src *drift.Source, fake fakedata.Provider, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		src:        src,
		fake:       fake,
		profile:    DefaultProfile(),
		driftScale: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns a new record for seg on date. With a nil prior every
// metric is drawn fresh; otherwise metrics drift from prior. prior is only
// read.
func (s *Synthesizer) Synthesize(seg string, date time.Time, prior *model.KPIRecord) *model.KPIRecord {
	h := newHistory(prior, s.onFallback)
	set := segment.For(seg)

	rec := &model.KPIRecord{
		Date:    date,
		Year:    date.Year(),
		Month:   int(date.Month()),
		Day:     date.Day(),
		Segment: seg,
		Company: s.fake.Company(),
		City:    s.fake.City(),
	}

	s.demographics(rec, set)
	s.core(rec, set, h)
	s.commercial(rec, set, h)
	s.marketing(rec, h)
	s.satisfaction(rec, h)
	s.operations(rec, set, h)
	s.usage(rec, set, h)
	s.specific(rec, set, h)
	s.expenses(rec, h)
	return rec
}

func (s *Synthesizer) demographics(rec *model.KPIRecord, set segment.Set) {
	rec.Region = s.fake.RegionName()
	rec.State = s.fake.RegionCode()
	rec.Country = Country
	rec.CustomerType = s.src.Pick(customerTypes)
	rec.SalesChannel = s.src.Pick(salesChannels)
	if set.Has(segment.Inventory) {
		rec.ProductCategory = model.S(s.src.Pick(productCategories))
	}
	if set.Has(segment.ServiceType) {
		rec.ServiceType = model.S(s.src.Pick(serviceTypes))
	}
	if set.Has(segment.Plan) {
		rec.Plan = model.S(s.src.Pick(plans))
	}
	rec.AgeRange = s.src.Pick(ageRanges)
	rec.Gender = s.src.Pick(genders)
	rec.TrafficSource = s.src.Pick(trafficSources)
	rec.Device = s.src.Pick(devices)
	rec.OperatingSystem = s.src.Pick(operatingSystems)
	rec.Browser = s.src.Pick(browsers)
}

func (s *Synthesizer) core(rec *model.KPIRecord, set segment.Set, h history) {
	p := &s.profile

	if h.ok {
		rec.Clients = max(1, int(float64(h.last.Clients)*s.src.Normal(1, p.ClientsDrift*s.driftScale)))
		rec.AvgTicket = math.Max(0.01, drift.Round2(h.last.AvgTicket*s.src.Normal(1, p.TicketDrift*s.driftScale)))
	} else {
		rec.Clients = int(s.src.LogNormal(p.Clients.Mu, p.Clients.Sigma))
		rec.AvgTicket = drift.Round2(s.src.LogNormal(p.Ticket.Mu, p.Ticket.Sigma))
	}

	rec.Revenue = drift.Round2(float64(rec.Clients) * rec.AvgTicket)
	rec.Cost = drift.Round2(rec.Revenue * s.uniform(p.CostRatio))
	if rec.Cost > rec.Revenue {
		rec.Cost = drift.Round2(rec.Revenue * p.CostCeiling)
	}
	rec.Profit = drift.Round2(rec.Revenue - rec.Cost)

	// Satisfaction never drifts.
	rec.SatisfactionIndex = drift.Clamp(drift.Round1(s.src.Normal(p.Satisfaction.Mean, p.Satisfaction.StdDev)), 1, 10)

	if set.Has(segment.Hospitality) {
		rec.OccupancyRate = model.F(s.normalWalk(h.gf("occupancy_rate", h.last.OccupancyRate), p.Occupancy, 0, 100))
	}

	rec.GrowthRate = s.normalWalk(h.f(h.last.GrowthRate), p.Growth, noFloor, noCeil)
	rec.MarketingCost = drift.Round2(rec.Revenue * s.uniform(p.MarketingRatio))
	rec.AdSpend = s.uniformWalk(h.f(h.last.AdSpend), p.AdSpend, 0, noCeil)
	rec.SalesForecast = drift.Round2(rec.Revenue * (1 + s.uniform(p.SalesForecastUplift)))
	rec.CostForecast = drift.Round2(rec.Cost * (1 + s.uniform(p.CostForecastUplift)))
	rec.BusinessSensitivity = s.uniformWalk(h.f(h.last.BusinessSensitivity), p.Sensitivity, 0, 100)

	lo, hi := p.CorrectionBounds.Min, p.CorrectionBounds.Max
	if h.ok {
		d := p.Correction.Step * s.driftScale
		prev := h.last.CorrectionIndex
		rec.CorrectionIndex = drift.Clamp(drift.Round3(s.src.Uniform(math.Max(lo, prev-d), math.Min(hi, prev+d))), lo, hi)
	} else {
		rec.CorrectionIndex = drift.Round3(s.uniform(p.Correction.Fresh))
	}

	rec.LinearProgramming = s.uniformWalk(h.f(h.last.LinearProgramming), p.LinearProgramming, 0, noCeil)
}

func (s *Synthesizer) commercial(rec *model.KPIRecord, set segment.Set, h history) {
	p := &s.profile

	if set.Has(segment.Inventory) {
		rec.ProductCount = model.I(s.intWalk(h.gi("product_count", h.last.ProductCount), p.ProductCount, 1, noIntCeil))
	}

	if rec.Clients > 0 {
		n := float64(rec.Clients)
		rec.CostPerClient = drift.Round2(rec.Cost / n)
		rec.RevenuePerClient = drift.Round2(rec.Revenue / n)
		rec.ProfitPerClient = drift.Round2(rec.Profit / n)
	}

	rec.AvgDiscount = s.normalWalk(h.f(h.last.AvgDiscount), p.Discount, 0, noCeil)
	rec.DiscountPct = drift.Round2(drift.Ratio(rec.AvgDiscount, rec.AvgTicket+rec.AvgDiscount) * 100)
	rec.ConversionRate = s.normalWalk(h.f(h.last.ConversionRate), p.Conversion, 0, 100)

	if set.Has(segment.SalesForce) {
		sps := s.intWalk(h.gi("sales_per_seller", h.last.SalesPerSeller), p.SalesPerSeller, 0, noIntCeil)
		rec.SalesPerSeller = model.I(sps)
		commission := 0.0
		if sps > 0 {
			commission = drift.Round2(rec.Revenue * s.uniform(p.CommissionRatio))
		}
		rec.SalesCommission = model.F(commission)
	}

	rec.TaxAmount = drift.Round2(rec.Revenue * s.uniform(p.TaxRatio))

	if set.Has(segment.Shipping) {
		rec.AvgShipping = model.F(s.normalWalk(h.gf("avg_shipping", h.last.AvgShipping), p.Shipping, 0, noCeil))
	}

	rec.OrdersPerClient = s.uniformWalk(h.f(h.last.OrdersPerClient), p.OrdersPerClient, 1, noCeil)

	if h.ok && h.last.LTV > 0 {
		rec.LTV = drift.Round2(s.src.LogNormal(math.Log(math.Max(1, h.last.LTV)), p.LTVDrift*s.driftScale))
	} else {
		rec.LTV = drift.Round2(s.src.LogNormal(p.LTV.Mu, p.LTV.Sigma))
	}

	rec.CAC = s.normalWalk(h.f(h.last.CAC), p.CAC, 0, noCeil)

	if set.Has(segment.Recurring) {
		mrr := drift.Round2(rec.Revenue * s.uniform(p.MRRRatio))
		rec.MRR = model.F(mrr)
		rec.ARR = model.F(drift.Round2(mrr * monthsPerYear))
	}

	rec.AvgDailyRevenue = drift.Round2(drift.Ratio(rec.Revenue, p.DaysPerMonth))
}

func (s *Synthesizer) marketing(rec *model.KPIRecord, h history) {
	p := &s.profile

	rec.CPC = s.normalWalk(h.f(h.last.CPC), p.CPC, 0.01, noCeil)
	rec.CPM = s.normalWalk(h.f(h.last.CPM), p.CPM, 0.01, noCeil)
	rec.CTR = s.normalWalk(h.f(h.last.CTR), p.CTR, 0, 100)
	rec.Impressions = s.intWalk(h.i(h.last.Impressions), p.Impressions, p.ImpressionsFloor, noIntCeil)
	rec.Clicks = int(float64(rec.Impressions) * rec.CTR / 100)
	rec.Leads = s.intWalk(h.i(h.last.Leads), p.Leads, 0, noIntCeil)
	rec.CostPerLead = drift.Round2(drift.Ratio(rec.MarketingCost, float64(rec.Leads)))
	rec.ROAS = drift.Round2(drift.Ratio(rec.Revenue, rec.AdSpend))
}

func (s *Synthesizer) satisfaction(rec *model.KPIRecord, h history) {
	p := &s.profile

	if h.ok {
		rec.AvgRating = drift.Clamp(drift.Round1(s.src.Normal(h.last.AvgRating, p.RatingDrift*s.driftScale)), 1, 5)
	} else {
		rec.AvgRating = drift.Clamp(drift.Round1(s.src.Normal(p.Rating.Mean, p.Rating.StdDev)), 1, 5)
	}

	rec.RatingCount = s.intWalk(h.i(h.last.RatingCount), p.RatingCount, 0, noIntCeil)
	rec.NPS = s.intWalk(h.i(h.last.NPS), p.NPS, -100, 100)
	rec.CSAT = s.intWalk(h.i(h.last.CSAT), p.CSAT, 1, 5)
	rec.Complaints = s.intWalk(h.i(h.last.Complaints), p.Complaints, 0, noIntCeil)
	rec.AvgResponseTime = s.uniformWalk(h.f(h.last.AvgResponseTime), p.ResponseTime, 0.1, noCeil)
}

func (s *Synthesizer) operations(rec *model.KPIRecord, set segment.Set, h history) {
	p := &s.profile

	rec.AvgDeliveryTime = s.uniformWalk(h.f(h.last.AvgDeliveryTime), p.DeliveryTime, 0.1, noCeil)
	rec.ReturnRate = s.uniformWalk(h.f(h.last.ReturnRate), p.ReturnRate, 0, 100)

	if set.Has(segment.Inventory) {
		level := s.intWalk(h.gi("inventory_level", h.last.InventoryLevel), p.InventoryLevel, 0, noIntCeil)
		turnover, cost := 0.0, 0.0
		if level > 0 {
			prev := h.gf("inventory_turnover", h.last.InventoryTurnover)
			if prev != nil && *prev <= 0 {
				prev = nil
			}
			turnover = s.uniformWalk(prev, p.Turnover, 0.1, noCeil)
			cost = drift.Round2(float64(level) * s.uniform(p.InventoryUnitCost))
		}
		rec.InventoryLevel = model.I(level)
		rec.InventoryTurnover = model.F(turnover)
		rec.InventoryCost = model.F(cost)
	}

	rec.Suppliers = s.intWalk(h.i(h.last.Suppliers), p.Suppliers, 1, noIntCeil)
	rec.DefectRate = s.uniformWalk(h.f(h.last.DefectRate), p.DefectRate, 0, 100)
}

func (s *Synthesizer) usage(rec *model.KPIRecord, set segment.Set, h history) {
	p := &s.profile

	if set.Has(segment.Usage) {
		prev := h.gi("active_users", h.last.ActiveUsers)
		if prev != nil && *prev > 0 {
			rec.ActiveUsers = model.I(int(s.src.LogNormal(math.Log(float64(*prev)), p.ActiveUsersDrift*s.driftScale)))
		} else {
			rec.ActiveUsers = model.I(int(s.src.LogNormal(p.ActiveUsers.Mu, p.ActiveUsers.Sigma)))
		}
		rec.TopFeature = model.S(s.src.Pick(features))
	}

	rec.AvgSessionTime = s.uniformWalk(h.f(h.last.AvgSessionTime), p.SessionTime, 0.1, noCeil)
	rec.RetentionRate = s.uniformWalk(h.f(h.last.RetentionRate), p.Retention, 0, 100)
	rec.ChurnRate = s.uniformWalk(h.f(h.last.ChurnRate), p.Churn, 0, 100)
	rec.Sessions = s.intWalk(h.i(h.last.Sessions), p.Sessions, 1, noIntCeil)
}

func (s *Synthesizer) specific(rec *model.KPIRecord, set segment.Set, h history) {
	p := &s.profile

	if set.Has(segment.Hospitality) {
		rec.RevPAR = model.F(s.uniformWalk(h.gf("revpar", h.last.RevPAR), p.RevPAR, 0, noCeil))
	}
	if set.Has(segment.Evasion) {
		rec.EvasionRate = model.F(s.uniformWalk(h.gf("evasion_rate", h.last.EvasionRate), p.Evasion, 0, 100))
	}
	if set.Has(segment.Attendance) {
		rec.AvgAttendanceTime = model.F(s.uniformWalk(h.gf("avg_attendance_time", h.last.AvgAttendanceTime), p.Attendance, 0.1, noCeil))
	}
}

func (s *Synthesizer) expenses(rec *model.KPIRecord, h history) {
	p := &s.profile

	rec.AdminExpense = s.normalWalk(h.f(h.last.AdminExpense), p.AdminExpense, 0, noCeil)
	rec.PayrollExpense = s.normalWalk(h.f(h.last.PayrollExpense), p.PayrollExpense, 0, noCeil)
	rec.FixedExpense = s.normalWalk(h.f(h.last.FixedExpense), p.FixedExpense, 0, noCeil)
	rec.VariableExpense = s.normalWalk(h.f(h.last.VariableExpense), p.VariableExpense, 0, noCeil)
	rec.TaxExpense = drift.Round2(rec.Revenue * s.uniform(p.TaxExpenseRatio))
	rec.FinancialExpense = s.normalWalk(h.f(h.last.FinancialExpense), p.FinancialExpense, 0, noCeil)
}
