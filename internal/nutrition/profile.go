package nutrition

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidServingSize is returned when a reference serving amount is zero
// or negative.
var ErrInvalidServingSize = errors.New("invalid serving size")

// Measurement is an amount with its unit, used for body weight and height.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Carbs holds the carbohydrate breakdown in grams.
type Carbs struct {
	Total float64 `json:"total"`
	Fiber float64 `json:"fiber"`
	Sugar float64 `json:"sugar"`
}

// Fat holds the fat breakdown in grams.
type Fat struct {
	Total           float64 `json:"total"`
	Saturated       float64 `json:"saturated"`
	Trans           float64 `json:"trans"`
	Monounsaturated float64 `json:"monounsaturated"`
	Polyunsaturated float64 `json:"polyunsaturated"`
}

// Profile is a full nutrition profile for one serving of a food, or an
// aggregate over several items. Vitamins and minerals are keyed by the
// reference tables so the tracked set can change without code changes.
// It is stored as a single JSONB column.
type Profile struct {
	Calories    float64            `json:"calories"`
	Protein     float64            `json:"protein"`
	Carbs       Carbs              `json:"carbs"`
	Fat         Fat                `json:"fat"`
	Cholesterol float64            `json:"cholesterol"`
	Sodium      float64            `json:"sodium"`
	Potassium   float64            `json:"potassium"`
	Vitamins    map[string]float64 `json:"vitamins"`
	Minerals    map[string]float64 `json:"minerals"`
}

// ZeroProfile returns a profile with every leaf set to zero and the vitamin
// and mineral maps populated from the reference key lists.
func ZeroProfile() Profile {
	p := Profile{
		Vitamins: make(map[string]float64, len(VitaminKeys)),
		Minerals: make(map[string]float64, len(MineralKeys)),
	}
	for _, k := range VitaminKeys {
		p.Vitamins[k] = 0
	}
	for _, k := range MineralKeys {
		p.Minerals[k] = 0
	}
	return p
}

// Clone returns a deep copy. Profile contains maps, so a plain value copy
// would share them.
func (p Profile) Clone() Profile {
	out := p
	out.Vitamins = make(map[string]float64, len(p.Vitamins))
	for k, v := range p.Vitamins {
		out.Vitamins[k] = v
	}
	out.Minerals = make(map[string]float64, len(p.Minerals))
	for k, v := range p.Minerals {
		out.Minerals[k] = v
	}
	return out
}

// Validate rejects negative values anywhere in the profile. Catalog
// entries describe amounts per serving; a negative amount would poison
// every snapshot and aggregate derived from it.
func (p Profile) Validate() error {
	leaves := []struct {
		name  string
		value float64
	}{
		{"calories", p.Calories},
		{"protein", p.Protein},
		{"carbs.total", p.Carbs.Total},
		{"carbs.fiber", p.Carbs.Fiber},
		{"carbs.sugar", p.Carbs.Sugar},
		{"fat.total", p.Fat.Total},
		{"fat.saturated", p.Fat.Saturated},
		{"fat.trans", p.Fat.Trans},
		{"fat.monounsaturated", p.Fat.Monounsaturated},
		{"fat.polyunsaturated", p.Fat.Polyunsaturated},
		{"cholesterol", p.Cholesterol},
		{"sodium", p.Sodium},
		{"potassium", p.Potassium},
	}
	for _, leaf := range leaves {
		if leaf.value < 0 {
			return fmt.Errorf("nutrition %s must not be negative", leaf.name)
		}
	}
	for k, v := range p.Vitamins {
		if v < 0 {
			return fmt.Errorf("nutrition vitamins.%s must not be negative", k)
		}
	}
	for k, v := range p.Minerals {
		if v < 0 {
			return fmt.Errorf("nutrition minerals.%s must not be negative", k)
		}
	}
	return nil
}

// Value implements the driver.Valuer interface.
func (p Profile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface.
func (p *Profile) Scan(value interface{}) error {
	if value == nil {
		*p = ZeroProfile()
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for nutrition profile: %T", value)
	}

	return json.Unmarshal(bytes, p)
}

// HasMicronutrients reports whether any micronutrient, electrolyte,
// cholesterol, or fat-subtype value is nonzero. Older meal snapshots were
// captured before micronutrients were tracked; the analyzer uses this to
// decide whether a snapshot is complete.
func (p Profile) HasMicronutrients() bool {
	for _, v := range p.Vitamins {
		if v != 0 {
			return true
		}
	}
	for _, v := range p.Minerals {
		if v != 0 {
			return true
		}
	}
	if p.Sodium != 0 || p.Potassium != 0 || p.Cholesterol != 0 {
		return true
	}
	return p.Fat.Saturated != 0 || p.Fat.Trans != 0 ||
		p.Fat.Monounsaturated != 0 || p.Fat.Polyunsaturated != 0
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round1 rounds half away from zero to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ScaleForServing scales a reference-serving profile to a requested amount.
//
// When the requested amount and unit match the reference serving the profile
// is returned unchanged. Otherwise the ratio is requestedAmount/refAmount
// even when the units differ. No cross-unit conversion is performed; this is
// a known limitation kept for compatibility with stored historical data, so
// do not change it without migrating existing meal snapshots.
//
// Every numeric leaf is multiplied by the ratio and rounded to 2 decimal
// places. A reference amount of zero or less returns ErrInvalidServingSize.
func ScaleForServing(p Profile, refAmount float64, refUnit string, amount float64, unit string) (Profile, error) {
	if refAmount <= 0 {
		return Profile{}, ErrInvalidServingSize
	}

	if amount == refAmount && unit == refUnit {
		return p.Clone(), nil
	}

	ratio := amount / refAmount

	out := ZeroProfile()
	out.Calories = round2(p.Calories * ratio)
	out.Protein = round2(p.Protein * ratio)
	out.Carbs.Total = round2(p.Carbs.Total * ratio)
	out.Carbs.Fiber = round2(p.Carbs.Fiber * ratio)
	out.Carbs.Sugar = round2(p.Carbs.Sugar * ratio)
	out.Fat.Total = round2(p.Fat.Total * ratio)
	out.Fat.Saturated = round2(p.Fat.Saturated * ratio)
	out.Fat.Trans = round2(p.Fat.Trans * ratio)
	out.Fat.Monounsaturated = round2(p.Fat.Monounsaturated * ratio)
	out.Fat.Polyunsaturated = round2(p.Fat.Polyunsaturated * ratio)
	out.Cholesterol = round2(p.Cholesterol * ratio)
	out.Sodium = round2(p.Sodium * ratio)
	out.Potassium = round2(p.Potassium * ratio)
	for k, v := range p.Vitamins {
		out.Vitamins[k] = round2(v * ratio)
	}
	for k, v := range p.Minerals {
		out.Minerals[k] = round2(v * ratio)
	}

	return out, nil
}

// Sum reduces a list of profiles into a single aggregate, starting from a
// zero profile. Sum(nil) is the zero profile. No rounding is applied.
func Sum(profiles []Profile) Profile {
	total := ZeroProfile()
	for _, p := range profiles {
		total.Calories += p.Calories
		total.Protein += p.Protein
		total.Carbs.Total += p.Carbs.Total
		total.Carbs.Fiber += p.Carbs.Fiber
		total.Carbs.Sugar += p.Carbs.Sugar
		total.Fat.Total += p.Fat.Total
		total.Fat.Saturated += p.Fat.Saturated
		total.Fat.Trans += p.Fat.Trans
		total.Fat.Monounsaturated += p.Fat.Monounsaturated
		total.Fat.Polyunsaturated += p.Fat.Polyunsaturated
		total.Cholesterol += p.Cholesterol
		total.Sodium += p.Sodium
		total.Potassium += p.Potassium
		for k, v := range p.Vitamins {
			total.Vitamins[k] += v
		}
		for k, v := range p.Minerals {
			total.Minerals[k] += v
		}
	}
	return total
}
