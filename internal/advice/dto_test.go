package advice_test

import (
	"encoding/json"

	"fitcoach/internal/advice"
	"fitcoach/internal/coachservice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func decode(body string) coachservice.Input {
	var req advice.AdviceRequest
	Expect(json.Unmarshal([]byte(body), &req)).To(Succeed())
	return req.ToInput()
}

var _ = Describe("AdviceRequest", func() {
	It("maps a well-formed payload", func() {
		in := decode(`{
			"totals": {"kcal": 1200, "p": 60, "f": 40, "c": 100},
			"goals": {"kcalTarget": 2000, "proteinTarget": 140, "fatTarget": 70, "carbsTarget": 250},
			"extraContext": {
				"nutritionExtras": {"fiberTotal": 12, "sugarTotal": 40, "sodiumTotal": 2000},
				"context": {"isTrainingDay": true, "sleepHoursAvg": 6.5, "streakDays": 4, "recentTopics": ["a", "b"], "nonce": "n1"},
				"latestBody": {"weight": 72.4, "bodyFat": 18},
				"goals": {"weightGoal": 70},
				"user": {"id": "u-1"}
			}
		}`)

		Expect(in).To(Equal(coachservice.Input{
			UserID:     "u-1",
			Totals:     coachservice.Totals{Kcal: 1200, Protein: 60, Fat: 40, Carbs: 100},
			Goals:      coachservice.Goals{KcalTarget: 2000, ProteinTarget: 140, FatTarget: 70, CarbsTarget: 250},
			Extras:     coachservice.Extras{FiberTotal: 12, SugarTotal: 40, SodiumTotal: 2000},
			Signals:    coachservice.Signals{IsTrainingDay: true, SleepHoursAvg: 6.5, StreakDays: 4, RecentTopics: []string{"a", "b"}, Nonce: "n1"},
			Body:       coachservice.Body{Weight: 72.4, BodyFat: 18},
			WeightGoal: 70,
		}))
	})

	It("coerces malformed fields instead of failing", func() {
		in := decode(`{
			"totals": {"kcal": "1200", "p": 60, "f": null, "c": "abc"},
			"goals": "oops",
			"meals": [{"fiber": 3}, {"fiber": "4", "sodium": 1000}, 5],
			"extraContext": {
				"context": {"isTrainingDay": "true", "sleepHoursAvg": -3, "recentTopics": ["a", 1, null, {}], "nonce": 7},
				"latestBody": {"weight": 72},
				"goals": {"weightGoal": "70"},
				"user": {"id": 123}
			}
		}`)

		Expect(in.Totals).To(Equal(coachservice.Totals{Kcal: 1200, Protein: 60}))
		Expect(in.Goals).To(Equal(coachservice.Goals{}))
		Expect(in.Extras).To(Equal(coachservice.Extras{FiberTotal: 7, SodiumTotal: 1000}))
		Expect(in.Signals.IsTrainingDay).To(BeTrue())
		Expect(in.Signals.SleepHoursAvg).To(BeZero())
		Expect(in.Signals.RecentTopics).To(Equal([]string{"a", "1"}))
		Expect(in.Signals.Nonce).To(Equal("7"))
		Expect(in.UserID).To(Equal("123"))
		Expect(in.WeightGoal).To(Equal(70.0))
		Expect(in.Body.Weight).To(Equal(72.0))
	})

	It("prefers aggregate extras over per-meal sums", func() {
		in := decode(`{
			"meals": [{"fiber": 3, "sugar": 10}, {"fiber": 4, "sugar": 15}],
			"extraContext": {"nutritionExtras": {"fiberTotal": 20}}
		}`)
		Expect(in.Extras.FiberTotal).To(Equal(20.0))
		Expect(in.Extras.SugarTotal).To(Equal(25.0))
	})

	It("takes seed over variant", func() {
		Expect(decode(`{"seed": "s", "variant": "v"}`).Seed).To(Equal("s"))
		Expect(decode(`{"variant": 3}`).Seed).To(Equal("3"))
	})

	It("maps an empty object to the zero input", func() {
		Expect(decode(`{}`)).To(Equal(coachservice.Input{}))
	})
})
