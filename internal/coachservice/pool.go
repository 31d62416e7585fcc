package coachservice

// facts are the derived numbers every rule reads. Gaps are target minus
// actual: positive means room left, negative means over.
type facts struct {
	kcal float64

	hasKcal, hasProtein, hasFat, hasCarbs  bool
	kcalGap, proteinGap, fatGap, carbsGap float64

	fiber, sugar, sodium float64

	trainingDay bool
	sleep       float64
	streak      float64

	hasWeight  bool
	weightDiff float64
	bodyFat    float64
}

func deriveFacts(in Input) facts {
	f := facts{
		kcal:        in.Totals.Kcal,
		hasKcal:     in.Goals.KcalTarget != 0,
		hasProtein:  in.Goals.ProteinTarget != 0,
		hasFat:      in.Goals.FatTarget != 0,
		hasCarbs:    in.Goals.CarbsTarget != 0,
		kcalGap:     in.Goals.KcalTarget - in.Totals.Kcal,
		proteinGap:  in.Goals.ProteinTarget - in.Totals.Protein,
		fatGap:      in.Goals.FatTarget - in.Totals.Fat,
		carbsGap:    in.Goals.CarbsTarget - in.Totals.Carbs,
		fiber:       in.Extras.FiberTotal,
		sugar:       in.Extras.SugarTotal,
		sodium:      in.Extras.SodiumTotal,
		trainingDay: in.Signals.IsTrainingDay,
		sleep:       in.Signals.SleepHoursAvg,
		streak:      in.Signals.StreakDays,
		bodyFat:     in.Body.BodyFat,
	}

	if in.Body.Weight > 0 && in.WeightGoal > 0 {
		f.hasWeight = true
		f.weightDiff = round1(in.Body.Weight - in.WeightGoal)
	}
	return f
}

// BuildPool evaluates every rule against the input and returns the
// candidate lines, deduplicated by exact text in rule order. For each firing
// rule one wording variant is drawn from r. When fewer than MinFilteredPool
// conditional lines exist the evergreen tips are appended so the selector
// always has something to work with.
func BuildPool(in Input, r *Rand) []Candidate {
	f := deriveFacts(in)

	pool := make([]Candidate, 0, len(rules))
	seen := make(map[string]struct{}, len(rules))
	add := func(kind ConditionKind, text string) {
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		pool = append(pool, Candidate{Kind: kind, Text: text})
	}

	for _, rule := range rules {
		if !rule.fires(f) {
			continue
		}
		variant := rule.variants[r.Intn(len(rule.variants))]
		add(rule.kind, variant(f, r))
	}

	if len(pool) < MinFilteredPool {
		for _, tip := range evergreenPhrases {
			add(KindEvergreen, tip(f, r))
		}
	}

	return pool
}
