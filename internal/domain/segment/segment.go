// Package segment holds the single table deciding which bonus metric groups
// apply to which market segment. Both fresh and drift synthesis consult it,
// so the two modes cannot disagree about a field being active.
package segment

// Group names a set of segment-gated fields.
type Group int

// Metric groups.
const (
	Hospitality Group = iota // occupancy rate, RevPAR
	Inventory                // product category, product count, inventory level/turnover/cost
	Recurring                // MRR, ARR
	Evasion                  // evasion rate
	Attendance               // average attendance time
	SalesForce               // sales per seller, sales commission
	Shipping                 // average shipping
	Usage                    // active users, most used feature
	ServiceType              // service type
	Plan                     // plan
)

// Segment names with special handling.
const (
	Hotelaria   = "Hotelaria"
	Varejo      = "Varejo"
	Industria   = "Indústria"
	SaaS        = "SaaS"
	TI          = "TI"
	Educacao    = "Educação"
	Saude       = "Saúde"
	Hospital    = "Hospital"
	Servicos    = "Serviços"
	Aplicativo  = "Aplicativo"
	Consultoria = "Consultoria"
	Banco       = "Banco"
)

var groupNames = map[Group]string{
	Hospitality: "hospitality",
	Inventory:   "inventory",
	Recurring:   "recurring",
	Evasion:     "evasion",
	Attendance:  "attendance",
	SalesForce:  "sales_force",
	Shipping:    "shipping",
	Usage:       "usage",
	ServiceType: "service_type",
	Plan:        "plan",
}

func (g Group) String() string {
	if n, ok := groupNames[g]; ok {
		return n
	}
	return "unknown"
}

// activation maps each group to the segments it applies to.
var activation = map[Group][]string{ //nolint:gochecknoglobals // fixed compatibility table
	Hospitality: {Hotelaria},
	Inventory:   {Varejo, Industria},
	Recurring:   {SaaS, TI},
	Evasion:     {Educacao},
	Attendance:  {Saude, Hospital},
	SalesForce:  {Varejo, Servicos},
	Shipping:    {Varejo},
	Usage:       {SaaS, TI, Aplicativo},
	ServiceType: {Servicos, TI, Consultoria, Saude, Educacao, Banco, Hospital},
	Plan:        {TI, Servicos, SaaS},
}

// index is activation inverted: segment -> active groups.
var index = buildIndex() //nolint:gochecknoglobals // derived from activation

func buildIndex() map[string]map[Group]bool {
	idx := make(map[string]map[Group]bool)
	for g, segs := range activation {
		for _, s := range segs {
			if idx[s] == nil {
				idx[s] = make(map[Group]bool)
			}
			idx[s][g] = true
		}
	}
	return idx
}

// AllGroups lists every group in declaration order.
func AllGroups() []Group {
	return []Group{Hospitality, Inventory, Recurring, Evasion, Attendance, SalesForce, Shipping, Usage, ServiceType, Plan}
}

// Active reports whether group applies to segment. Unknown segments have no
// active groups.
func Active(seg string, g Group) bool {
	return index[seg][g]
}

// Groups returns the groups active for seg, in declaration order.
func Groups(seg string) []Group {
	var out []Group
	for _, g := range AllGroups() {
		if index[seg][g] {
			out = append(out, g)
		}
	}
	return out
}

// Set is the resolved activation for one segment.
type Set struct {
	groups map[Group]bool
}

// For resolves the active groups of a segment once, for repeated lookups.
func For(seg string) Set {
	return Set{groups: index[seg]}
}

// Has reports whether g is active in the set.
func (s Set) Has(g Group) bool { return s.groups[g] }
