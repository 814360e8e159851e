package outlier

import (
	"math"

	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
)

// Domain is the valid range a field is repaired into after mutation.
type Domain struct {
	Min, Max float64
}

//nolint:gochecknoglobals // repair domains
var (
	floorOne  = Domain{Min: 1, Max: math.Inf(1)}
	floorZero = Domain{Min: 0, Max: math.Inf(1)}
	percent   = Domain{Min: 0, Max: 100}
	signed    = Domain{Min: math.Inf(-1), Max: math.Inf(1)}
)

func scale(lo, hi float64) Domain { return Domain{Min: lo, Max: hi} }

// field is one allow-listed metric. Exactly one of fv/iv is set; both
// return nil when the record does not carry the field.
type field struct {
	name   string
	domain Domain
	fv     func(*model.KPIRecord) *float64
	iv     func(*model.KPIRecord) *int
}

func (f field) present(r *model.KPIRecord) bool {
	if f.fv != nil {
		return f.fv(r) != nil
	}
	return f.iv(r) != nil
}

func flt(name string, d Domain, get func(*model.KPIRecord) *float64) field {
	return field{name: name, domain: d, fv: get}
}

func num(name string, d Domain, get func(*model.KPIRecord) *int) field {
	return field{name: name, domain: d, iv: get}
}

type rec = model.KPIRecord

// allowList is every metric the injector may corrupt. Identity, date,
// categorical fields and the client count are excluded.
//
//nolint:gochecknoglobals // fixed field table
var allowList = []field{
	flt("avg_ticket", floorOne, func(r *rec) *float64 { return &r.AvgTicket }),
	flt("revenue", floorOne, func(r *rec) *float64 { return &r.Revenue }),
	flt("cost", floorOne, func(r *rec) *float64 { return &r.Cost }),
	flt("profit", signed, func(r *rec) *float64 { return &r.Profit }),
	flt("satisfaction_index", scale(1, 10), func(r *rec) *float64 { return &r.SatisfactionIndex }),
	flt("occupancy_rate", percent, func(r *rec) *float64 { return r.OccupancyRate }),
	flt("growth_rate", signed, func(r *rec) *float64 { return &r.GrowthRate }),
	flt("marketing_cost", floorOne, func(r *rec) *float64 { return &r.MarketingCost }),
	flt("ad_spend", floorOne, func(r *rec) *float64 { return &r.AdSpend }),
	flt("sales_forecast", floorOne, func(r *rec) *float64 { return &r.SalesForecast }),
	flt("cost_forecast", floorOne, func(r *rec) *float64 { return &r.CostForecast }),
	flt("business_sensitivity", percent, func(r *rec) *float64 { return &r.BusinessSensitivity }),
	flt("correction_index", scale(0.9, 1.1), func(r *rec) *float64 { return &r.CorrectionIndex }),
	flt("linear_programming", floorOne, func(r *rec) *float64 { return &r.LinearProgramming }),

	num("product_count", floorOne, func(r *rec) *int { return r.ProductCount }),
	flt("cost_per_client", floorOne, func(r *rec) *float64 { return &r.CostPerClient }),
	flt("revenue_per_client", floorOne, func(r *rec) *float64 { return &r.RevenuePerClient }),
	flt("profit_per_client", signed, func(r *rec) *float64 { return &r.ProfitPerClient }),
	flt("avg_discount", floorOne, func(r *rec) *float64 { return &r.AvgDiscount }),
	flt("discount_pct", percent, func(r *rec) *float64 { return &r.DiscountPct }),
	flt("conversion_rate", percent, func(r *rec) *float64 { return &r.ConversionRate }),
	num("sales_per_seller", floorOne, func(r *rec) *int { return r.SalesPerSeller }),
	flt("sales_commission", floorOne, func(r *rec) *float64 { return r.SalesCommission }),
	flt("tax_amount", floorOne, func(r *rec) *float64 { return &r.TaxAmount }),
	flt("avg_shipping", floorOne, func(r *rec) *float64 { return r.AvgShipping }),
	flt("orders_per_client", floorOne, func(r *rec) *float64 { return &r.OrdersPerClient }),
	flt("ltv", floorOne, func(r *rec) *float64 { return &r.LTV }),
	flt("cac", floorOne, func(r *rec) *float64 { return &r.CAC }),
	flt("mrr", floorOne, func(r *rec) *float64 { return r.MRR }),
	flt("arr", floorOne, func(r *rec) *float64 { return r.ARR }),
	flt("avg_daily_revenue", floorOne, func(r *rec) *float64 { return &r.AvgDailyRevenue }),

	flt("cpc", floorOne, func(r *rec) *float64 { return &r.CPC }),
	flt("cpm", floorOne, func(r *rec) *float64 { return &r.CPM }),
	flt("ctr", percent, func(r *rec) *float64 { return &r.CTR }),
	num("impressions", floorOne, func(r *rec) *int { return &r.Impressions }),
	num("clicks", floorZero, func(r *rec) *int { return &r.Clicks }),
	num("leads", floorZero, func(r *rec) *int { return &r.Leads }),
	flt("cost_per_lead", floorOne, func(r *rec) *float64 { return &r.CostPerLead }),
	flt("roas", floorOne, func(r *rec) *float64 { return &r.ROAS }),

	flt("avg_rating", scale(1, 5), func(r *rec) *float64 { return &r.AvgRating }),
	num("rating_count", floorZero, func(r *rec) *int { return &r.RatingCount }),
	num("nps", scale(-100, 100), func(r *rec) *int { return &r.NPS }),
	num("csat", scale(1, 5), func(r *rec) *int { return &r.CSAT }),
	num("complaints", floorZero, func(r *rec) *int { return &r.Complaints }),
	flt("avg_response_time", floorOne, func(r *rec) *float64 { return &r.AvgResponseTime }),

	flt("avg_delivery_time", floorOne, func(r *rec) *float64 { return &r.AvgDeliveryTime }),
	flt("return_rate", percent, func(r *rec) *float64 { return &r.ReturnRate }),
	num("inventory_level", floorOne, func(r *rec) *int { return r.InventoryLevel }),
	flt("inventory_turnover", floorOne, func(r *rec) *float64 { return r.InventoryTurnover }),
	flt("inventory_cost", floorOne, func(r *rec) *float64 { return r.InventoryCost }),
	num("suppliers", floorOne, func(r *rec) *int { return &r.Suppliers }),
	flt("defect_rate", percent, func(r *rec) *float64 { return &r.DefectRate }),

	num("active_users", floorOne, func(r *rec) *int { return r.ActiveUsers }),
	flt("avg_session_time", floorOne, func(r *rec) *float64 { return &r.AvgSessionTime }),
	flt("retention_rate", percent, func(r *rec) *float64 { return &r.RetentionRate }),
	flt("churn_rate", percent, func(r *rec) *float64 { return &r.ChurnRate }),
	num("sessions", floorOne, func(r *rec) *int { return &r.Sessions }),

	flt("revpar", floorOne, func(r *rec) *float64 { return r.RevPAR }),
	flt("evasion_rate", percent, func(r *rec) *float64 { return r.EvasionRate }),
	flt("avg_attendance_time", floorOne, func(r *rec) *float64 { return r.AvgAttendanceTime }),

	flt("admin_expense", floorOne, func(r *rec) *float64 { return &r.AdminExpense }),
	flt("payroll_expense", floorOne, func(r *rec) *float64 { return &r.PayrollExpense }),
	flt("fixed_expense", floorOne, func(r *rec) *float64 { return &r.FixedExpense }),
	flt("variable_expense", floorOne, func(r *rec) *float64 { return &r.VariableExpense }),
	flt("tax_expense", floorOne, func(r *rec) *float64 { return &r.TaxExpense }),
	flt("financial_expense", floorOne, func(r *rec) *float64 { return &r.FinancialExpense }),
}

// Fields lists the allow-listed field names.
func Fields() []string {
	out := make([]string, len(allowList))
	for i, f := range allowList {
		out[i] = f.name
	}
	return out
}

// DomainOf returns the repair domain of an allow-listed field.
func DomainOf(name string) (Domain, bool) {
	for _, f := range allowList {
		if f.name == name {
			return f.domain, true
		}
	}
	return Domain{}, false
}
