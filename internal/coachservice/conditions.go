package coachservice

// ConditionKind tags every rule that can contribute a line to the pool.
type ConditionKind int

const (
	KindKcalUnder ConditionKind = iota + 1
	KindKcalOver
	KindKcalOnTarget
	KindProteinFarUnder
	KindProteinSlightlyUnder
	KindProteinMet
	KindFatOver
	KindFatUnder
	KindCarbsUnder
	KindCarbsOver
	KindFiberLow
	KindSugarHigh
	KindSodiumHigh
	KindTrainingDay
	KindSleepShort
	KindSleepAdequate
	KindStreak
	KindWeightAboveGoal
	KindWeightBelowGoal
	KindWeightOnTrack
	KindBodyFat
	KindEvergreen
)

var kindNames = map[ConditionKind]string{
	KindKcalUnder:            "kcal_under",
	KindKcalOver:             "kcal_over",
	KindKcalOnTarget:         "kcal_on_target",
	KindProteinFarUnder:      "protein_far_under",
	KindProteinSlightlyUnder: "protein_slightly_under",
	KindProteinMet:           "protein_met",
	KindFatOver:              "fat_over",
	KindFatUnder:             "fat_under",
	KindCarbsUnder:           "carbs_under",
	KindCarbsOver:            "carbs_over",
	KindFiberLow:             "fiber_low",
	KindSugarHigh:            "sugar_high",
	KindSodiumHigh:           "sodium_high",
	KindTrainingDay:          "training_day",
	KindSleepShort:           "sleep_short",
	KindSleepAdequate:        "sleep_adequate",
	KindStreak:               "streak",
	KindWeightAboveGoal:      "weight_above_goal",
	KindWeightBelowGoal:      "weight_below_goal",
	KindWeightOnTrack:        "weight_on_track",
	KindBodyFat:              "body_fat",
	KindEvergreen:            "evergreen",
}

func (k ConditionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsMacroGap reports whether the kind is driven by a macro goal gap.
func (k ConditionKind) IsMacroGap() bool {
	return k >= KindKcalUnder && k <= KindCarbsOver
}

// Thresholds. Comparisons against them are strict exactly as written in
// the rule table.
const (
	kcalTolerance    = 150.0
	proteinFarGap    = 20.0
	fatTolerance     = 5.0
	carbsTolerance   = 20.0
	fiberLowBelow    = 18.0
	sugarHighAbove   = 50.0
	sodiumHighAbove  = 2400.0
	shortSleepBelow  = 6.0
	weightTolerance  = 0.5
	defaultHydration = 1800.0
)

// phrase renders one variant. It may draw from r to pick food ideas.
type phrase func(f facts, r *Rand) string

// condition is one row of the rule table: a gate and its wording variants.
type condition struct {
	kind     ConditionKind
	fires    func(f facts) bool
	variants []phrase
}

// rules is evaluated top to bottom by BuildPool. Row order is pool order.
var rules = []condition{
	{KindKcalUnder, func(f facts) bool { return f.hasKcal && f.kcalGap > kcalTolerance }, kcalUnderPhrases},
	{KindKcalOver, func(f facts) bool { return f.hasKcal && f.kcalGap < -kcalTolerance }, kcalOverPhrases},
	{KindKcalOnTarget, func(f facts) bool {
		return f.hasKcal && f.kcalGap >= -kcalTolerance && f.kcalGap <= kcalTolerance
	}, kcalOnTargetPhrases},

	{KindProteinFarUnder, func(f facts) bool { return f.hasProtein && f.proteinGap > proteinFarGap }, proteinFarUnderPhrases},
	{KindProteinSlightlyUnder, func(f facts) bool {
		return f.hasProtein && f.proteinGap > 0 && f.proteinGap <= proteinFarGap
	}, proteinSlightlyUnderPhrases},
	{KindProteinMet, func(f facts) bool { return f.hasProtein && f.proteinGap <= 0 }, proteinMetPhrases},

	{KindFatOver, func(f facts) bool { return f.hasFat && f.fatGap < -fatTolerance }, fatOverPhrases},
	{KindFatUnder, func(f facts) bool { return f.hasFat && f.fatGap > fatTolerance }, fatUnderPhrases},

	{KindCarbsUnder, func(f facts) bool { return f.hasCarbs && f.carbsGap > carbsTolerance }, carbsUnderPhrases},
	{KindCarbsOver, func(f facts) bool { return f.hasCarbs && f.carbsGap < -carbsTolerance }, carbsOverPhrases},

	{KindFiberLow, func(f facts) bool { return f.fiber > 0 && f.fiber < fiberLowBelow }, fiberLowPhrases},
	{KindSugarHigh, func(f facts) bool { return f.sugar > 0 && f.sugar > sugarHighAbove }, sugarHighPhrases},
	{KindSodiumHigh, func(f facts) bool { return f.sodium > 0 && f.sodium > sodiumHighAbove }, sodiumHighPhrases},

	{KindTrainingDay, func(f facts) bool { return f.trainingDay }, trainingDayPhrases},
	{KindSleepShort, func(f facts) bool { return f.sleep > 0 && f.sleep < shortSleepBelow }, sleepShortPhrases},
	{KindSleepAdequate, func(f facts) bool { return f.sleep > 0 && f.sleep >= shortSleepBelow }, sleepAdequatePhrases},
	{KindStreak, func(f facts) bool { return f.streak > 0 }, streakPhrases},

	{KindWeightAboveGoal, func(f facts) bool { return f.hasWeight && f.weightDiff > weightTolerance }, weightAbovePhrases},
	{KindWeightBelowGoal, func(f facts) bool { return f.hasWeight && f.weightDiff < -weightTolerance }, weightBelowPhrases},
	{KindWeightOnTrack, func(f facts) bool {
		return f.hasWeight && f.weightDiff >= -weightTolerance && f.weightDiff <= weightTolerance
	}, weightOnTrackPhrases},

	{KindBodyFat, func(f facts) bool { return f.bodyFat > 0 }, bodyFatPhrases},
}
