// Package model contains the records produced by the generators.
package model

import "time"

// DateLayout is the textual date format used for sorting and output.
const DateLayout = "2006-01-02"

// KPIRecord is one company/segment observation on one date. Field order
// follows the output column order. Segment-gated fields are pointers and
// stay nil when the segment does not carry them.
type KPIRecord struct {
	ID int // assigned by the orchestrator, not part of the synthesized fields

	// identity / date
	Date    time.Time
	Year    int
	Month   int
	Day     int
	Segment string
	Company string
	City    string

	// core financials
	Clients             int
	AvgTicket           float64
	Revenue             float64
	Cost                float64
	Profit              float64
	SatisfactionIndex   float64
	OccupancyRate       *float64
	GrowthRate          float64
	MarketingCost       float64
	AdSpend             float64
	SalesForecast       float64
	CostForecast        float64
	BusinessSensitivity float64
	CorrectionIndex     float64
	LinearProgramming   float64

	// demographics
	Region          string
	State           string
	Country         string
	CustomerType    string
	SalesChannel    string
	ProductCategory *string
	ServiceType     *string
	Plan            *string
	AgeRange        string
	Gender          string
	TrafficSource   string
	Device          string
	OperatingSystem string
	Browser         string

	// commercial
	ProductCount     *int
	CostPerClient    float64
	RevenuePerClient float64
	ProfitPerClient  float64
	AvgDiscount      float64
	DiscountPct      float64
	ConversionRate   float64
	SalesPerSeller   *int
	SalesCommission  *float64
	TaxAmount        float64
	AvgShipping      *float64
	OrdersPerClient  float64
	LTV              float64
	CAC              float64
	MRR              *float64
	ARR              *float64
	AvgDailyRevenue  float64

	// marketing
	CPC         float64
	CPM         float64
	CTR         float64
	Impressions int
	Clicks      int
	Leads       int
	CostPerLead float64
	ROAS        float64

	// satisfaction
	AvgRating       float64
	RatingCount     int
	NPS             int
	CSAT            int
	Complaints      int
	AvgResponseTime float64

	// operations / logistics
	AvgDeliveryTime   float64
	ReturnRate        float64
	InventoryLevel    *int
	InventoryTurnover *float64
	InventoryCost     *float64
	Suppliers         int
	DefectRate        float64

	// product usage
	ActiveUsers    *int
	AvgSessionTime float64
	RetentionRate  float64
	ChurnRate      float64
	TopFeature     *string
	Sessions       int

	// segment specific
	RevPAR            *float64
	EvasionRate       *float64
	AvgAttendanceTime *float64

	// expenses
	AdminExpense     float64
	PayrollExpense   float64
	FixedExpense     float64
	VariableExpense  float64
	TaxExpense       float64
	FinancialExpense float64
}

// DateString renders Date with DateLayout.
func (r *KPIRecord) DateString() string {
	return r.Date.Format(DateLayout)
}

// Clone returns a deep copy; gated pointers are duplicated so mutating the
// copy never touches r.
func (r *KPIRecord) Clone() *KPIRecord {
	c := *r
	c.OccupancyRate = cloneF(r.OccupancyRate)
	c.ProductCategory = cloneS(r.ProductCategory)
	c.ServiceType = cloneS(r.ServiceType)
	c.Plan = cloneS(r.Plan)
	c.ProductCount = cloneI(r.ProductCount)
	c.SalesPerSeller = cloneI(r.SalesPerSeller)
	c.SalesCommission = cloneF(r.SalesCommission)
	c.AvgShipping = cloneF(r.AvgShipping)
	c.MRR = cloneF(r.MRR)
	c.ARR = cloneF(r.ARR)
	c.InventoryLevel = cloneI(r.InventoryLevel)
	c.InventoryTurnover = cloneF(r.InventoryTurnover)
	c.InventoryCost = cloneF(r.InventoryCost)
	c.ActiveUsers = cloneI(r.ActiveUsers)
	c.TopFeature = cloneS(r.TopFeature)
	c.RevPAR = cloneF(r.RevPAR)
	c.EvasionRate = cloneF(r.EvasionRate)
	c.AvgAttendanceTime = cloneF(r.AvgAttendanceTime)
	return &c
}

// F, I and S allocate pointers for gated fields.
func F(v float64) *float64 { return &v }
func I(v int) *int         { return &v }
func S(v string) *string   { return &v }

func cloneF(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return F(*p)
}

func cloneI(p *int) *int {
	if p == nil {
		return nil
	}
	return I(*p)
}

func cloneS(p *string) *string {
	if p == nil {
		return nil
	}
	return S(*p)
}
