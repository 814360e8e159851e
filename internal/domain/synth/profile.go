package synth

// Uniform is a closed-open real interval.
type Uniform struct{ Min, Max float64 }

// IntRange is a closed integer interval.
type IntRange struct{ Min, Max int }

// LogNormal parameterizes exp(N(Mu, Sigma)).
type LogNormal struct{ Mu, Sigma float64 }

// Normal parameterizes N(Mean, StdDev).
type Normal struct{ Mean, StdDev float64 }

// Walk is a metric drawn from Fresh when it has no prior value and moved by
// Step (a standard deviation or a half-width, depending on the metric) when
// it does.
type Walk struct {
	Fresh Uniform
	Step  float64
}

// IntWalk is the integer counterpart of Walk.
type IntWalk struct {
	Fresh IntRange
	Step  int
}

// Profile collects every distribution and drift step used by the
// synthesizer. The defaults are uncalibrated; override them per run.
type Profile struct {
	Clients      LogNormal
	ClientsDrift float64 // sd of the multiplicative factor around 1
	Ticket       LogNormal
	TicketDrift  float64
	CostRatio    Uniform
	CostCeiling  float64 // cost is capped at this share of revenue
	Satisfaction Normal

	Occupancy           Walk // normal step
	Growth              Walk // normal step
	MarketingRatio      Uniform
	AdSpend             Walk // uniform step
	SalesForecastUplift Uniform
	CostForecastUplift  Uniform
	Sensitivity         Walk // uniform step
	Correction          Walk // uniform step
	CorrectionBounds    Uniform
	LinearProgramming   Walk // uniform step

	ProductCount    IntWalk
	Discount        Walk // normal step
	Conversion      Walk // normal step
	SalesPerSeller  IntWalk
	CommissionRatio Uniform
	TaxRatio        Uniform
	Shipping        Walk // normal step
	OrdersPerClient Walk // uniform step
	LTV             LogNormal
	LTVDrift        float64 // sigma around the log of the prior value
	CAC             Walk    // normal step
	MRRRatio        Uniform
	DaysPerMonth    float64

	CPC              Walk // normal step
	CPM              Walk // normal step
	CTR              Walk // normal step
	Impressions      IntWalk
	ImpressionsFloor int
	Leads            IntWalk

	Rating       Normal
	RatingDrift  float64
	RatingCount  IntWalk
	NPS          IntWalk
	CSAT         IntWalk
	Complaints   IntWalk
	ResponseTime Walk // uniform step

	DeliveryTime      Walk // uniform step
	ReturnRate        Walk // uniform step
	InventoryLevel    IntWalk
	Turnover          Walk // uniform step
	InventoryUnitCost Uniform
	Suppliers         IntWalk
	DefectRate        Walk // uniform step

	ActiveUsers      LogNormal
	ActiveUsersDrift float64
	SessionTime      Walk // uniform step
	Retention        Walk // uniform step
	Churn            Walk // uniform step
	Sessions         IntWalk

	RevPAR     Walk // uniform step
	Evasion    Walk // uniform step
	Attendance Walk // uniform step

	AdminExpense     Walk // normal step
	PayrollExpense   Walk // normal step
	FixedExpense     Walk // normal step
	VariableExpense  Walk // normal step
	TaxExpenseRatio  Uniform
	FinancialExpense Walk // normal step
}

// DefaultProfile returns the stock distributions. Client counts center near
// 100 and average tickets near 40.
func DefaultProfile() Profile {
	return Profile{
		Clients:      LogNormal{Mu: 4.6, Sigma: 0.8},
		ClientsDrift: 0.05,
		Ticket:       LogNormal{Mu: 3.7, Sigma: 0.5},
		TicketDrift:  0.02,
		CostRatio:    Uniform{0.6, 0.95},
		CostCeiling:  0.95,
		Satisfaction: Normal{Mean: 7.5, StdDev: 1.5},

		Occupancy:           Walk{Uniform{60, 100}, 2},
		Growth:              Walk{Uniform{-10, 30}, 5},
		MarketingRatio:      Uniform{0.05, 0.2},
		AdSpend:             Walk{Uniform{1000, 10000}, 2000},
		SalesForecastUplift: Uniform{0.05, 0.15},
		CostForecastUplift:  Uniform{0, 0.1},
		Sensitivity:         Walk{Uniform{0, 100}, 10},
		Correction:          Walk{Uniform{0.95, 1.05}, 0.05},
		CorrectionBounds:    Uniform{0.9, 1.1},
		LinearProgramming:   Walk{Uniform{0, 1000}, 200},

		ProductCount:    IntWalk{IntRange{1, 200}, 50},
		Discount:        Walk{Uniform{0, 50}, 5},
		Conversion:      Walk{Uniform{1, 10}, 1},
		SalesPerSeller:  IntWalk{IntRange{1, 50}, 10},
		CommissionRatio: Uniform{0.01, 0.05},
		TaxRatio:        Uniform{0.1, 0.3},
		Shipping:        Walk{Uniform{5, 50}, 2},
		OrdersPerClient: Walk{Uniform{1, 3}, 0.5},
		LTV:             LogNormal{Mu: 5, Sigma: 0.7},
		LTVDrift:        0.2,
		CAC:             Walk{Uniform{10, 100}, 5},
		MRRRatio:        Uniform{0.8, 1.2},
		DaysPerMonth:    30,

		CPC:              Walk{Uniform{0.5, 5}, 0.5},
		CPM:              Walk{Uniform{5, 20}, 2},
		CTR:              Walk{Uniform{0.5, 5}, 0.5},
		Impressions:      IntWalk{IntRange{1000, 10000}, 1000},
		ImpressionsFloor: 100,
		Leads:            IntWalk{IntRange{10, 100}, 20},

		Rating:       Normal{Mean: 4, StdDev: 0.5},
		RatingDrift:  0.3,
		RatingCount:  IntWalk{IntRange{10, 100}, 20},
		NPS:          IntWalk{IntRange{-100, 100}, 20},
		CSAT:         IntWalk{IntRange{1, 5}, 1},
		Complaints:   IntWalk{IntRange{0, 10}, 2},
		ResponseTime: Walk{Uniform{1, 24}, 2},

		DeliveryTime:      Walk{Uniform{1, 7}, 1},
		ReturnRate:        Walk{Uniform{1, 10}, 2},
		InventoryLevel:    IntWalk{IntRange{100, 1000}, 200},
		Turnover:          Walk{Uniform{1, 10}, 2},
		InventoryUnitCost: Uniform{5, 20},
		Suppliers:         IntWalk{IntRange{1, 10}, 2},
		DefectRate:        Walk{Uniform{0.1, 5}, 0.5},

		ActiveUsers:      LogNormal{Mu: 5, Sigma: 0.9},
		ActiveUsersDrift: 0.2,
		SessionTime:      Walk{Uniform{5, 60}, 10},
		Retention:        Walk{Uniform{30, 90}, 10},
		Churn:            Walk{Uniform{1, 10}, 2},
		Sessions:         IntWalk{IntRange{1, 50}, 5},

		RevPAR:     Walk{Uniform{50, 200}, 20},
		Evasion:    Walk{Uniform{5, 20}, 5},
		Attendance: Walk{Uniform{15, 60}, 15},

		AdminExpense:     Walk{Uniform{500, 5000}, 500},
		PayrollExpense:   Walk{Uniform{2000, 20000}, 1000},
		FixedExpense:     Walk{Uniform{1000, 10000}, 500},
		VariableExpense:  Walk{Uniform{500, 5000}, 500},
		TaxExpenseRatio:  Uniform{0.05, 0.15},
		FinancialExpense: Walk{Uniform{100, 1000}, 100},
	}
}
