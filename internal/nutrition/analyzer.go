package nutrition

import (
	"time"

	"github.com/google/uuid"
)

// AnalyzerItem is one logged meal item as seen by the analyzer. Snapshot is
// the nutrition captured at log time; it may be nil or missing
// micronutrients for items logged before micronutrients were tracked.
type AnalyzerItem struct {
	FoodID   uuid.UUID
	Amount   float64
	Unit     string
	Snapshot *Profile
}

// AnalyzerMeal is one logged meal as seen by the analyzer.
type AnalyzerMeal struct {
	Date  time.Time
	Items []AnalyzerItem
}

// ServingProfile is a catalog food's reference serving and nutrition, used
// to recompute item nutrition when a snapshot is incomplete.
type ServingProfile struct {
	ServingAmount float64
	ServingUnit   string
	Nutrition     Profile
}

// FoodLookup fetches a catalog food by id. A nil result with a nil error
// means the food no longer exists; the item is skipped silently. The
// analyzer memoizes calls per run, so each unique id is fetched at most
// once per report.
type FoodLookup func(id uuid.UUID) (*ServingProfile, error)

// NutrientRecord is one row of the micronutrient report. RDA and Percentage
// are nil for untracked nutrients such as the lipid total rollup.
type NutrientRecord struct {
	Group      string    `json:"group"`
	Key        string    `json:"key"`
	Total      float64   `json:"total"`
	PerDay     float64   `json:"perDay"`
	RDA        *RDAmount `json:"rda"`
	Percentage *float64  `json:"percentage"`
}

// ReportRange describes the analyzed window and how many distinct calendar
// dates actually had meals logged.
type ReportRange struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TrackedDays int       `json:"trackedDays"`
}

// Totals holds the accumulated micronutrient amounts by group.
type Totals struct {
	Vitamins     map[string]float64 `json:"vitamins"`
	Minerals     map[string]float64 `json:"minerals"`
	Lipids       map[string]float64 `json:"lipids"`
	Electrolytes map[string]float64 `json:"electrolytes"`
}

// Report is the result of a micronutrient analysis run.
type Report struct {
	Range        ReportRange      `json:"range"`
	Totals       Totals           `json:"totals"`
	Summary      []NutrientRecord `json:"summary"`
	Deficiencies []NutrientRecord `json:"deficiencies"`
	Excesses     []NutrientRecord `json:"excesses"`
}

var (
	deficiencyGroups = map[string]bool{"vitamins": true, "minerals": true}
	deficiencyKeys   = map[string]bool{"potassium": true}
	upperLimitKeys   = map[string]bool{"sodium": true, "saturated": true, "trans": true, "cholesterol": true}
)

// lipid report order: the four subtypes, then cholesterol, then the total
// fat rollup (which has no RDA).
var lipidReportKeys = append(append([]string{}, LipidKeys...), "cholesterol", "total")

// Analyze accumulates micronutrient totals over the given meals and
// classifies each tracked nutrient against its RDA.
//
// For each item the effective nutrition is resolved in priority order: the
// stored snapshot when it carries any micronutrient data, otherwise a
// recompute from the catalog food via the memoized lookup, otherwise the
// item is skipped without error.
//
// Per-day averages divide by the number of distinct calendar dates among
// the meals, never less than one. A vitamin or mineral (or potassium) below
// 80% is a deficiency; sodium, saturated fat, trans fat, and cholesterol
// above 100% are excesses, anything else above 120%.
func Analyze(start, end time.Time, meals []AnalyzerMeal, lookup FoodLookup) (Report, error) {
	totals := Totals{
		Vitamins:     make(map[string]float64, len(VitaminKeys)),
		Minerals:     make(map[string]float64, len(MineralKeys)),
		Lipids:       make(map[string]float64, len(lipidReportKeys)),
		Electrolytes: map[string]float64{"sodium": 0, "potassium": 0},
	}
	for _, k := range VitaminKeys {
		totals.Vitamins[k] = 0
	}
	for _, k := range MineralKeys {
		totals.Minerals[k] = 0
	}
	for _, k := range lipidReportKeys {
		totals.Lipids[k] = 0
	}

	trackedDates := make(map[string]bool)
	memo := make(map[uuid.UUID]*ServingProfile)

	resolve := func(item AnalyzerItem) (*Profile, error) {
		if item.Snapshot != nil && item.Snapshot.HasMicronutrients() {
			return item.Snapshot, nil
		}

		food, seen := memo[item.FoodID]
		if !seen {
			var err error
			food, err = lookup(item.FoodID)
			if err != nil {
				return nil, err
			}
			memo[item.FoodID] = food
		}
		if food == nil {
			return nil, nil
		}

		scaled, err := ScaleForServing(food.Nutrition, food.ServingAmount, food.ServingUnit, item.Amount, item.Unit)
		if err != nil {
			return nil, err
		}
		return &scaled, nil
	}

	for _, meal := range meals {
		if !meal.Date.IsZero() {
			trackedDates[meal.Date.Format("2006-01-02")] = true
		}

		for _, item := range meal.Items {
			p, err := resolve(item)
			if err != nil {
				return Report{}, err
			}
			if p == nil {
				continue
			}

			for _, k := range VitaminKeys {
				totals.Vitamins[k] += p.Vitamins[k]
			}
			for _, k := range MineralKeys {
				totals.Minerals[k] += p.Minerals[k]
			}
			totals.Lipids["saturated"] += p.Fat.Saturated
			totals.Lipids["trans"] += p.Fat.Trans
			totals.Lipids["monounsaturated"] += p.Fat.Monounsaturated
			totals.Lipids["polyunsaturated"] += p.Fat.Polyunsaturated
			totals.Lipids["total"] += p.Fat.Total
			totals.Lipids["cholesterol"] += p.Cholesterol
			totals.Electrolytes["sodium"] += p.Sodium
			totals.Electrolytes["potassium"] += p.Potassium
		}
	}

	daysTracked := len(trackedDates)
	divisor := daysTracked
	if divisor == 0 {
		divisor = 1
	}

	var summary []NutrientRecord
	record := func(group, key string, total float64) {
		rda := LookupRDA(group, key)
		perDay := total / float64(divisor)

		var percentage *float64
		if rda != nil {
			pct := round1(perDay / rda.Amount * 100)
			percentage = &pct
		}

		summary = append(summary, NutrientRecord{
			Group:      group,
			Key:        key,
			Total:      round2(total),
			PerDay:     round2(perDay),
			RDA:        rda,
			Percentage: percentage,
		})
	}

	for _, k := range VitaminKeys {
		record("vitamins", k, totals.Vitamins[k])
	}
	for _, k := range MineralKeys {
		record("minerals", k, totals.Minerals[k])
	}
	for _, k := range lipidReportKeys {
		record("lipids", k, totals.Lipids[k])
	}
	record("electrolytes", "sodium", totals.Electrolytes["sodium"])
	record("electrolytes", "potassium", totals.Electrolytes["potassium"])

	var deficiencies, excesses []NutrientRecord
	for _, rec := range summary {
		if rec.Percentage == nil {
			continue
		}
		if (deficiencyGroups[rec.Group] || deficiencyKeys[rec.Key]) && *rec.Percentage < 80 {
			deficiencies = append(deficiencies, rec)
		}
		if upperLimitKeys[rec.Key] {
			if *rec.Percentage > 100 {
				excesses = append(excesses, rec)
			}
		} else if *rec.Percentage > 120 {
			excesses = append(excesses, rec)
		}
	}

	return Report{
		Range:        ReportRange{Start: start, End: end, TrackedDays: daysTracked},
		Totals:       totals,
		Summary:      summary,
		Deficiencies: deficiencies,
		Excesses:     excesses,
	}, nil
}
