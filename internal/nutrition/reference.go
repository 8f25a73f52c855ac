package nutrition

// Nutrient key lists and RDA amounts are data, not code. The analyzer walks
// these tables, so adding or changing a tracked nutrient does not require
// touching the analysis logic.

// VitaminKeys lists the tracked vitamins in report order.
var VitaminKeys = []string{"a", "c", "d", "e", "k", "b1", "b2", "b3", "b6", "b12", "folate"}

// MineralKeys lists the tracked minerals in report order.
var MineralKeys = []string{"calcium", "iron", "magnesium", "phosphorus", "zinc", "copper", "manganese", "selenium"}

// LipidKeys lists the tracked fat subtypes in report order.
var LipidKeys = []string{"saturated", "trans", "monounsaturated", "polyunsaturated"}

// RDAmount is a recommended daily amount with its display unit.
type RDAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RDA maps group -> nutrient key -> recommended daily amount. Nutrients
// without an entry (for example the lipid "total" rollup) report a null
// percentage and are never classified.
var RDA = map[string]map[string]RDAmount{
	"vitamins": {
		"a":      {Amount: 900, Unit: "mcg"},
		"c":      {Amount: 90, Unit: "mg"},
		"d":      {Amount: 15, Unit: "mcg"},
		"e":      {Amount: 15, Unit: "mg"},
		"k":      {Amount: 120, Unit: "mcg"},
		"b1":     {Amount: 1.2, Unit: "mg"},
		"b2":     {Amount: 1.3, Unit: "mg"},
		"b3":     {Amount: 16, Unit: "mg"},
		"b6":     {Amount: 1.3, Unit: "mg"},
		"b12":    {Amount: 2.4, Unit: "mcg"},
		"folate": {Amount: 400, Unit: "mcg"},
	},
	"minerals": {
		"calcium":    {Amount: 1000, Unit: "mg"},
		"iron":       {Amount: 18, Unit: "mg"},
		"magnesium":  {Amount: 400, Unit: "mg"},
		"phosphorus": {Amount: 700, Unit: "mg"},
		"zinc":       {Amount: 11, Unit: "mg"},
		"copper":     {Amount: 0.9, Unit: "mg"},
		"manganese":  {Amount: 2.3, Unit: "mg"},
		"selenium":   {Amount: 55, Unit: "mcg"},
	},
	"electrolytes": {
		"sodium":    {Amount: 1500, Unit: "mg"},
		"potassium": {Amount: 4700, Unit: "mg"},
	},
	"lipids": {
		"saturated":       {Amount: 20, Unit: "g"},
		"trans":           {Amount: 2, Unit: "g"},
		"monounsaturated": {Amount: 20, Unit: "g"},
		"polyunsaturated": {Amount: 20, Unit: "g"},
		"cholesterol":     {Amount: 300, Unit: "mg"},
	},
}

// LookupRDA returns the RDA entry for a group/key pair, or nil when the
// nutrient is untracked.
func LookupRDA(group, key string) *RDAmount {
	if byKey, ok := RDA[group]; ok {
		if rda, ok := byKey[key]; ok {
			return &rda
		}
	}
	return nil
}
