package csvout

import (
	"github.com/IOVASCON/projeto-csv-super/internal/domain/model"
)

// KPIRow serializes r in KPIHeader order.
func KPIRow(r *model.KPIRecord) []string {
	return []string{
		formatInt(r.ID),
		r.DateString(),
		formatInt(r.Year),
		formatInt(r.Month),
		formatInt(r.Day),
		r.Segment,
		r.Company,
		r.City,

		formatInt(r.Clients),
		formatFloat(r.AvgTicket),
		formatFloat(r.Revenue),
		formatFloat(r.Cost),
		formatFloat(r.Profit),
		formatFloat(r.SatisfactionIndex),
		blankFloat(r.OccupancyRate),
		formatFloat(r.GrowthRate),
		formatFloat(r.MarketingCost),
		formatFloat(r.AdSpend),
		formatFloat(r.SalesForecast),
		formatFloat(r.CostForecast),
		formatFloat(r.BusinessSensitivity),
		formatFloat(r.CorrectionIndex),
		formatFloat(r.LinearProgramming),

		r.Region,
		r.State,
		r.Country,
		r.CustomerType,
		r.SalesChannel,
		blankString(r.ProductCategory),
		blankString(r.ServiceType),
		blankString(r.Plan),
		r.AgeRange,
		r.Gender,
		r.TrafficSource,
		r.Device,
		r.OperatingSystem,
		r.Browser,

		zeroInt(r.ProductCount),
		formatFloat(r.CostPerClient),
		formatFloat(r.RevenuePerClient),
		formatFloat(r.ProfitPerClient),
		formatFloat(r.AvgDiscount),
		formatFloat(r.DiscountPct),
		formatFloat(r.ConversionRate),
		zeroInt(r.SalesPerSeller),
		zeroFloat(r.SalesCommission),
		formatFloat(r.TaxAmount),
		zeroFloat(r.AvgShipping),
		formatFloat(r.OrdersPerClient),
		formatFloat(r.LTV),
		formatFloat(r.CAC),
		zeroFloat(r.MRR),
		zeroFloat(r.ARR),
		formatFloat(r.AvgDailyRevenue),

		formatFloat(r.CPC),
		formatFloat(r.CPM),
		formatFloat(r.CTR),
		formatInt(r.Impressions),
		formatInt(r.Clicks),
		formatInt(r.Leads),
		formatFloat(r.CostPerLead),
		formatFloat(r.ROAS),

		formatFloat(r.AvgRating),
		formatInt(r.RatingCount),
		formatInt(r.NPS),
		formatInt(r.CSAT),
		formatInt(r.Complaints),
		formatFloat(r.AvgResponseTime),

		formatFloat(r.AvgDeliveryTime),
		formatFloat(r.ReturnRate),
		zeroInt(r.InventoryLevel),
		zeroFloat(r.InventoryTurnover),
		zeroFloat(r.InventoryCost),
		formatInt(r.Suppliers),
		formatFloat(r.DefectRate),

		zeroInt(r.ActiveUsers),
		formatFloat(r.AvgSessionTime),
		formatFloat(r.RetentionRate),
		formatFloat(r.ChurnRate),
		blankString(r.TopFeature),
		formatInt(r.Sessions),

		blankFloat(r.RevPAR),
		blankFloat(r.EvasionRate),
		blankFloat(r.AvgAttendanceTime),

		formatFloat(r.AdminExpense),
		formatFloat(r.PayrollExpense),
		formatFloat(r.FixedExpense),
		formatFloat(r.VariableExpense),
		formatFloat(r.TaxExpense),
		formatFloat(r.FinancialExpense),
	}
}

// HotelRow serializes s in HotelHeader order.
func HotelRow(s *model.HotelStay) []string {
	d := s.Daily
	return []string{
		formatInt(s.ID),
		s.DateString(),
		formatInt(s.Date.Year()),
		formatInt(int(s.Date.Month())),
		formatInt(s.Date.Day()),
		s.HotelName,
		formatInt(s.TotalRooms),
		formatFloat(d.Occupancy),
		s.CustomerName,
		s.RoomType,
		s.PaymentMethod,
		formatInt(s.Rooms),
		formatInt(s.Nights),
		formatFloat(s.NightlyRate),
		formatFloat(s.Subtotal),
		formatFloat(s.ExtraCharges),
		formatFloat(s.TotalPaid),
		formatFloat(s.Expenses.Fixed),
		formatFloat(s.Expenses.Variable),
		formatFloat(s.Expenses.Labor),
		formatFloat(s.Expenses.Financial),
		formatFloat(s.Expenses.Administrative),
		formatInt(d.RoomsUsed),
		formatFloat(d.RoomRevenue),
		formatFloat(d.TotalRevenue),
		formatFloat(d.TotalCost),
		formatFloat(d.OperatingProfit),
		formatFloat(d.ADR),
		formatFloat(d.RevPAR),
		formatFloat(d.TRevPAR),
		formatFloat(d.GOPPAR),
	}
}
