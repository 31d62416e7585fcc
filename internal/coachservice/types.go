package coachservice

/* =================================================================================
							INPUT / OUTPUT TYPES
=================================================================================*/

// Totals holds what the user actually ate today.
type Totals struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"p"`
	Fat     float64 `json:"f"`
	Carbs   float64 `json:"c"`
}

// Goals holds the daily macro targets. A zero target means "not set".
type Goals struct {
	KcalTarget    float64 `json:"kcalTarget"`
	ProteinTarget float64 `json:"proteinTarget"`
	FatTarget     float64 `json:"fatTarget"`
	CarbsTarget   float64 `json:"carbsTarget"`
}

// Extras are the micronutrient aggregates (grams for fiber/sugar, mg for sodium).
type Extras struct {
	FiberTotal  float64 `json:"fiberTotal"`
	SugarTotal  float64 `json:"sugarTotal"`
	SodiumTotal float64 `json:"sodiumTotal"`
}

// Signals are the lifestyle context flags sent by the client.
type Signals struct {
	IsTrainingDay bool     `json:"isTrainingDay"`
	SleepHoursAvg float64  `json:"sleepHoursAvg"`
	StreakDays    float64  `json:"streakDays"`
	RecentTopics  []string `json:"recentTopics"`
	Nonce         string   `json:"nonce"`
}

// Body is the latest body measurement.
type Body struct {
	Weight  float64 `json:"weight"`
	BodyFat float64 `json:"bodyFat"`
}

// Input is the fully coerced request the engine works on.
// Every field is optional; zero values disable the matching rules.
type Input struct {
	UserID     string  `json:"userId"`
	Seed       string  `json:"seed"`
	Totals     Totals  `json:"totals"`
	Goals      Goals   `json:"goals"`
	Extras     Extras  `json:"extras"`
	Signals    Signals `json:"signals"`
	Body       Body    `json:"body"`
	WeightGoal float64 `json:"weightGoal"`
}

// Candidate is one line of advice in the pool.
type Candidate struct {
	Kind ConditionKind
	Text string
}

// Result is what a single Generate call produces.
type Result struct {
	Lines      []string `json:"lines"`
	TopicsUsed []string `json:"topicsUsed"`
	Text       string   `json:"advice"`
	Seed       uint32   `json:"seed"`
	SeedKey    string   `json:"-"`
}
