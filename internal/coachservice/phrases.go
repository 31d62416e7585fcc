package coachservice

// This file stores the wording for every rule. Edit the text here; the
// gating logic lives in conditions.go.

import (
	"fmt"
	"math"
	"strings"
)

/* =================================================================================
								FOOD IDEAS
=================================================================================*/

type proteinIdea struct {
	label   string
	protein int
}

func (p proteinIdea) String() string {
	return fmt.Sprintf("%s (P%dg)", p.label, p.protein)
}

var proteinIdeas = []proteinIdea{
	{"chicken breast 100g", 22},
	{"Greek yogurt 150g", 15},
	{"a pack of natto", 8},
	{"a can of tuna in water", 12},
	{"2 eggs", 12},
}

var fatDownTips = []string{
	"Swap fried dishes for grilled or steamed ones",
	"Toss salads with dressing instead of pouring it on to halve the amount",
	"Switch dairy to low-fat or fat-free versions",
}

var slowCarbs = []string{
	"A small serving of oatmeal, brown rice or whole-grain bread",
	"100g of sweet potato as your staple",
	"Soba instead of udon",
}

var fiberPicks = []string{
	"a bagged salad with a handful of seaweed",
	"microwaved frozen broccoli",
	"a piece of fruit such as an apple or banana",
}

var convenienceStore = []string{
	"shredded salad chicken with a cut salad",
	"a salad fish pack with miso soup",
	"bran bread, a boiled egg and unsweetened vegetable juice",
}

var eatingOut = []string{
	"at a beef bowl place, order a regular bowl with salad and miso soup and go easy on the sauce",
	"for set meals, ask for less rice and pick sashimi, grilled fish or ginger pork",
	"for ramen, go half noodles with an extra egg and nori",
}

var trimWays = []string{
	"halve your snacks",
	"go smaller on the staple",
	"skip oily food at dinner",
}

/* =================================================================================
								HELPERS
=================================================================================*/

// round0 rounds to the nearest integer for display.
func round0(v float64) int {
	return int(math.Round(v))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func oneOf[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// pickN returns n items from a shuffled copy of items (Fisher-Yates, high to low).
func pickN[T any](r *Rand, items []T, n int) []T {
	a := make([]T, len(items))
	copy(a, items)
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
	if n > len(a) {
		n = len(a)
	}
	return a[:n]
}

func joinIdeas(ideas []proteinIdea) string {
	parts := make([]string, len(ideas))
	for i, idea := range ideas {
		parts[i] = idea.String()
	}
	return strings.Join(parts, " / ")
}

/* =================================================================================
								CALORIES
=================================================================================*/

var kcalUnderPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You still have about %d kcal of room today. A balanced meal with protein first is a good way to use it.", round0(f.kcalGap))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Calories are running %d kcal under target. Don't skip the next meal; under-eating tends to backfire at night.", round0(f.kcalGap))
	},
	func(f facts, r *Rand) string {
		return fmt.Sprintf("About %d kcal left in the budget. A proper snack such as %s fits nicely.", round0(f.kcalGap), oneOf(r, proteinIdeas))
	},
}

var kcalOverPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Calories are %d kcal over target today. Fine-tune with one of these: %s.", round0(-f.kcalGap), strings.Join(pickN(r, trimWays, 2), " / "))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You're about %d kcal above the plan. No need to compensate hard; just keep the next meal light.", round0(-f.kcalGap))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Intake is +%d kcal over goal. A 20-minute walk and slightly smaller portions tomorrow even it out.", round0(-f.kcalGap))
	},
}

var kcalOnTargetPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Calories are right on target (within %d kcal). Keep this rhythm going.", round0(math.Abs(f.kcalGap)))
	},
	func(facts, *Rand) string {
		return "Energy intake is on point today. Consistency like this is what moves the needle."
	},
}

/* =================================================================================
								PROTEIN
=================================================================================*/

var proteinFarUnderPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Protein is short by about %dg. Add one of %s.", round0(f.proteinGap), joinIdeas(pickN(r, proteinIdeas, 2)))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You're %dg under your protein goal. Put protein first at the next meal.", round0(f.proteinGap))
	},
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Protein gap of %dg today; %s would close a good part of it.", round0(f.proteinGap), oneOf(r, proteinIdeas))
	},
}

var proteinSlightlyUnderPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Protein is only %dg away from target; %s would finish it off.", round0(f.proteinGap), oneOf(r, proteinIdeas))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Almost there on protein: %dg to go.", round0(f.proteinGap))
	},
}

var proteinMetPhrases = []phrase{
	func(facts, *Rand) string {
		return "Protein goal reached. Nice work keeping recovery covered."
	},
	func(facts, *Rand) string {
		return "Protein target met today. Spread it evenly across meals tomorrow too."
	},
}

/* =================================================================================
								FAT
=================================================================================*/

var fatOverPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Fat is about %dg over target. %s and tomorrow will balance out.", round0(-f.fatGap), oneOf(r, fatDownTips))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Fat intake ran %dg high. Choose lean cuts and go easy on oil and butter.", round0(-f.fatGap))
	},
}

var fatUnderPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Fat is %dg under target. A handful of nuts or some avocado helps hormones and satiety.", round0(f.fatGap))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You have %dg of fat left. Olive oil on vegetables is an easy way to add healthy fats.", round0(f.fatGap))
	},
}

/* =================================================================================
								CARBS
=================================================================================*/

var carbsUnderPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Carbs are %dg below target. %s keeps energy steady around training.", round0(f.carbsGap), oneOf(r, slowCarbs))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("There's room for about %dg more carbs. Slow carbs before and after training work best.", round0(f.carbsGap))
	},
}

var carbsOverPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Carbs are %dg over target. Go for a smaller rice or bread portion at the next meal.", round0(-f.carbsGap))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Carb intake is +%dg above plan. Fill up on protein and greens before the starch.", round0(-f.carbsGap))
	},
}

/* =================================================================================
								MICRONUTRIENTS
=================================================================================*/

var fiberLowPhrases = []phrase{
	func(f facts, r *Rand) string {
		return fmt.Sprintf("Fiber is low at %dg. Add %s for fullness and gut health.", round0(f.fiber), oneOf(r, fiberPicks))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Only %dg of fiber so far. Aim for 18g or more with vegetables, beans or whole grains.", round0(f.fiber))
	},
}

var sugarHighPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Sugar is at %dg today. Have sweets right after a meal rather than as a standalone snack.", round0(f.sugar))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Sugar intake reached %dg. Switch sweet drinks to sparkling water or unsweetened tea.", round0(f.sugar))
	},
}

var sodiumHighPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Sodium is at %dmg. Leave the soup broth and ask for sauces on the side.", round0(f.sodium))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Salt ran high today (%dmg). Drink plenty of water and add potassium-rich vegetables like spinach.", round0(f.sodium))
	},
}

/* =================================================================================
								LIFESTYLE
=================================================================================*/

var trainingDayPhrases = []phrase{
	func(facts, *Rand) string {
		return "Training day: get 20-30g of protein within a couple of hours after your workout."
	},
	func(facts, *Rand) string {
		return "It's a training day, so don't fear carbs around the session; they fuel performance and recovery."
	},
	func(facts, *Rand) string {
		return "Training day tip: drink water before, during and after the workout."
	},
}

var sleepShortPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Sleep is averaging about %d hours. Short sleep raises cravings, so keep snacks pre-portioned.", round0(f.sleep))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("With only ~%dh of sleep, prioritise rest tonight; appetite control gets easier when you're rested.", round0(f.sleep))
	},
}

var sleepAdequatePhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Sleep is averaging about %d hours. Good recovery makes every other habit easier.", round0(f.sleep))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Solid sleep (~%dh). Keep the same bedtime to lock it in.", round0(f.sleep))
	},
}

var streakPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("%d-day logging streak! Consistency beats perfection.", round0(f.streak))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You've logged %d days in a row. Keep the chain going tomorrow.", round0(f.streak))
	},
}

/* =================================================================================
								BODY
=================================================================================*/

var weightAbovePhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You're %.1fkg above your goal weight. A steady daily deficit of 300-500 kcal gets you there without losing muscle.", f.weightDiff)
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("%.1fkg to go to your goal weight. Keep protein high and the trend will follow.", f.weightDiff)
	},
}

var weightBelowPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("You're %.1fkg below your goal weight. Add a small surplus from protein and carbs.", -f.weightDiff)
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Weight is %.1fkg under goal. A bit more food around training helps you build back up.", -f.weightDiff)
	},
}

var weightOnTrackPhrases = []phrase{
	func(facts, *Rand) string {
		return "Weight is right on track with your goal. Maintenance mode: keep doing what works."
	},
	func(facts, *Rand) string {
		return "You're within half a kilo of your goal weight. Focus on keeping the habits steady."
	},
}

var bodyFatPhrases = []phrase{
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("Body fat is at %d%%. Protein plus strength training is the surest way to improve composition.", round0(f.bodyFat))
	},
	func(f facts, _ *Rand) string {
		return fmt.Sprintf("At %d%% body fat, watch the weekly trend rather than day-to-day swings.", round0(f.bodyFat))
	},
}

/* =================================================================================
								EVERGREEN
=================================================================================*/

// evergreenPhrases top up a pool that has too few conditional lines.
var evergreenPhrases = []phrase{
	func(f facts, _ *Rand) string {
		kcal := f.kcal
		if kcal <= 0 {
			kcal = defaultHydration
		}
		target := math.Min(math.Max(round1(kcal/1000*1.2), 1.2), 3.0)
		return fmt.Sprintf("Drink water regularly. Aim for about %.1fL a day; a glass before meals also curbs overeating.", target)
	},
	func(_ facts, r *Rand) string {
		return fmt.Sprintf("Convenience store option: %s is quick and makes protein easy.", oneOf(r, convenienceStore))
	},
	func(_ facts, r *Rand) string {
		return fmt.Sprintf("Eating out tip: %s. You stay satisfied without dropping protein.", oneOf(r, eatingOut))
	},
	func(facts, *Rand) string {
		return "Save dessert for right after a meal and keep it small; it's gentler on blood sugar than a standalone snack."
	},
	func(facts, *Rand) string {
		return "Switching from frying or butter to steaming, grilling or the microwave trims fat without effort."
	},
	func(facts, *Rand) string {
		return "Eat the protein on your plate first; it helps fullness and keeps blood sugar steadier."
	},
}
