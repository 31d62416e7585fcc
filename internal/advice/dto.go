package advice

import (
	"fitcoach/internal/coachservice"
	"fitcoach/internal/utility"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// AdviceRequest is the POST /advice payload. Every section is optional and
// every leaf is decoded leniently.
type AdviceRequest struct {
	Totals       utility.Object[TotalsPayload]       `json:"totals"`
	Goals        utility.Object[GoalsPayload]        `json:"goals"`
	Meals        utility.List[MealPayload]           `json:"meals"`
	ExtraContext utility.Object[ExtraContextPayload] `json:"extraContext"`

	// Seed and Variant pin the generator explicitly. Seed wins over Variant.
	Seed    utility.Text `json:"seed"`
	Variant utility.Text `json:"variant"`
}

type TotalsPayload struct {
	Kcal    utility.Number `json:"kcal"`
	Protein utility.Number `json:"p"`
	Fat     utility.Number `json:"f"`
	Carbs   utility.Number `json:"c"`
}

type GoalsPayload struct {
	KcalTarget    utility.Number `json:"kcalTarget"`
	ProteinTarget utility.Number `json:"proteinTarget"`
	FatTarget     utility.Number `json:"fatTarget"`
	CarbsTarget   utility.Number `json:"carbsTarget"`
}

// MealPayload carries the per-meal micronutrients used when no aggregate
// totals are sent.
type MealPayload struct {
	Fiber  utility.Number `json:"fiber"`
	Sugar  utility.Number `json:"sugar"`
	Sodium utility.Number `json:"sodium"`
}

type ExtraContextPayload struct {
	NutritionExtras utility.Object[NutritionExtrasPayload] `json:"nutritionExtras"`
	Context         utility.Object[ContextPayload]         `json:"context"`
	LatestBody      utility.Object[BodyPayload]            `json:"latestBody"`
	Goals           utility.Object[WeightGoalPayload]      `json:"goals"`
	User            utility.Object[UserPayload]            `json:"user"`
}

type NutritionExtrasPayload struct {
	FiberTotal  utility.Number `json:"fiberTotal"`
	SugarTotal  utility.Number `json:"sugarTotal"`
	SodiumTotal utility.Number `json:"sodiumTotal"`
}

type ContextPayload struct {
	IsTrainingDay utility.Flag     `json:"isTrainingDay"`
	SleepHoursAvg utility.Number   `json:"sleepHoursAvg"`
	StreakDays    utility.Number   `json:"streakDays"`
	RecentTopics  utility.TextList `json:"recentTopics"`
	Nonce         utility.Text     `json:"nonce"`
}

type BodyPayload struct {
	Weight  utility.Number `json:"weight"`
	BodyFat utility.Number `json:"bodyFat"`
}

type WeightGoalPayload struct {
	WeightGoal utility.Number `json:"weightGoal"`
}

type UserPayload struct {
	ID utility.Text `json:"id"`
}

// AdviceResponse is the success body of POST /advice.
type AdviceResponse struct {
	Advice     string   `json:"advice"`
	TopicsUsed []string `json:"topicsUsed"`
}

// ToInput flattens the payload into the engine's input. Aggregate extras
// that are missing or zero are summed from the meals list.
func (r AdviceRequest) ToInput() coachservice.Input {
	totals := r.Totals.Value
	goals := r.Goals.Value
	extra := r.ExtraContext.Value
	extras := extra.NutritionExtras.Value
	ctx := extra.Context.Value
	body := extra.LatestBody.Value

	seed := r.Seed.String()
	if seed == "" {
		seed = r.Variant.String()
	}

	in := coachservice.Input{
		UserID: extra.User.Value.ID.String(),
		Seed:   seed,
		Totals: coachservice.Totals{
			Kcal:    totals.Kcal.Float64(),
			Protein: totals.Protein.Float64(),
			Fat:     totals.Fat.Float64(),
			Carbs:   totals.Carbs.Float64(),
		},
		Goals: coachservice.Goals{
			KcalTarget:    goals.KcalTarget.Float64(),
			ProteinTarget: goals.ProteinTarget.Float64(),
			FatTarget:     goals.FatTarget.Float64(),
			CarbsTarget:   goals.CarbsTarget.Float64(),
		},
		Extras: coachservice.Extras{
			FiberTotal:  extras.FiberTotal.Float64(),
			SugarTotal:  extras.SugarTotal.Float64(),
			SodiumTotal: extras.SodiumTotal.Float64(),
		},
		Signals: coachservice.Signals{
			IsTrainingDay: ctx.IsTrainingDay.Bool(),
			SleepHoursAvg: ctx.SleepHoursAvg.Float64(),
			StreakDays:    ctx.StreakDays.Float64(),
			RecentTopics:  []string(ctx.RecentTopics),
			Nonce:         ctx.Nonce.String(),
		},
		Body: coachservice.Body{
			Weight:  body.Weight.Float64(),
			BodyFat: body.BodyFat.Float64(),
		},
		WeightGoal: extra.Goals.Value.WeightGoal.Float64(),
	}

	var fiber, sugar, sodium float64
	for _, m := range r.Meals {
		fiber += m.Fiber.Float64()
		sugar += m.Sugar.Float64()
		sodium += m.Sodium.Float64()
	}
	if in.Extras.FiberTotal == 0 {
		in.Extras.FiberTotal = fiber
	}
	if in.Extras.SugarTotal == 0 {
		in.Extras.SugarTotal = sugar
	}
	if in.Extras.SodiumTotal == 0 {
		in.Extras.SodiumTotal = sodium
	}

	return in
}
