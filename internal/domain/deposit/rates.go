package deposit

// Plan is the deposit plan type
type Plan string

const (
	PlanFixed    Plan = "fixed"
	PlanFlexible Plan = "flexible"
)

// Currencies eligible for deposits
var Currencies = []string{"USDT", "BTC", "ETH"}

// Terms are the fixed-plan durations in days
var Terms = []int{30, 90, 180, 360}

// FlexibleAPR holds annual rates for the flexible plan
var FlexibleAPR = map[string]float64{
	"USDT": 0.0221,
	"BTC":  0.0156,
	"ETH":  0.0168,
}

// DefaultFlexibleAPR applies when the currency has no flexible rate.
// Validated input never reaches it, kept as a guard.
const DefaultFlexibleAPR = 0.05

// FixedAPR holds annual rates for the fixed plan by currency and term
var FixedAPR = map[string]map[int]float64{
	"USDT": {30: 0.1296, 90: 0.1492, 180: 0.1612, 360: 0.1864},
	"BTC":  {30: 0.1212, 90: 0.1388, 180: 0.1506, 360: 0.1739},
	"ETH":  {30: 0.1212, 90: 0.1388, 180: 0.1506, 360: 0.1739},
}

// IsCurrency reports whether code is an eligible deposit currency
func IsCurrency(code string) bool {
	for _, c := range Currencies {
		if c == code {
			return true
		}
	}
	return false
}
