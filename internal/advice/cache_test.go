package advice_test

import (
	"context"
	"time"

	"fitcoach/internal/advice"
	"fitcoach/internal/coachservice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var fixedDay = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func fixedEngine(opts ...coachservice.Option) *coachservice.Engine {
	opts = append([]coachservice.Option{coachservice.WithClock(func() time.Time { return fixedDay })}, opts...)
	return coachservice.NewEngine(opts...)
}

var sampleInput = coachservice.Input{
	UserID: "u-1",
	Totals: coachservice.Totals{Kcal: 1200, Protein: 60, Fat: 40, Carbs: 100},
	Goals:  coachservice.Goals{KcalTarget: 2000, ProteinTarget: 140, FatTarget: 70, CarbsTarget: 250},
}

var _ = Describe("Cache", func() {
	ctx := context.Background()

	It("serves the second identical request from memory", func() {
		cache, err := advice.NewCache(fixedEngine(), 8)
		Expect(err).NotTo(HaveOccurred())

		first, hit, err := cache.Generate(ctx, sampleInput)
		Expect(err).NotTo(HaveOccurred())
		Expect(hit).To(BeFalse())

		second, hit, err := cache.Generate(ctx, sampleInput)
		Expect(err).NotTo(HaveOccurred())
		Expect(hit).To(BeTrue())
		Expect(second).To(Equal(first))
		Expect(cache.Len()).To(Equal(1))
	})

	It("returns what the engine would return", func() {
		engine := fixedEngine()
		cache, err := advice.NewCache(engine, 8)
		Expect(err).NotTo(HaveOccurred())

		want, err := engine.Generate(ctx, sampleInput)
		Expect(err).NotTo(HaveOccurred())

		got, _, err := cache.Generate(ctx, sampleInput)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	})

	It("keys entries by input", func() {
		cache, err := advice.NewCache(fixedEngine(), 8)
		Expect(err).NotTo(HaveOccurred())

		other := sampleInput
		other.Signals.Nonce = "again"

		_, _, err = cache.Generate(ctx, sampleInput)
		Expect(err).NotTo(HaveOccurred())
		_, hit, err := cache.Generate(ctx, other)
		Expect(err).NotTo(HaveOccurred())
		Expect(hit).To(BeFalse())
		Expect(cache.Len()).To(Equal(2))
	})

	It("never hits when disabled", func() {
		cache, err := advice.NewCache(fixedEngine(), 0)
		Expect(err).NotTo(HaveOccurred())

		for i := 0; i < 3; i++ {
			_, hit, err := cache.Generate(ctx, sampleInput)
			Expect(err).NotTo(HaveOccurred())
			Expect(hit).To(BeFalse())
		}
		Expect(cache.Len()).To(BeZero())
	})

	It("does not cache failures", func() {
		engine := fixedEngine(coachservice.WithPostProcessor(func(context.Context, string) (string, error) {
			panic("boom")
		}))
		cache, err := advice.NewCache(engine, 8)
		Expect(err).NotTo(HaveOccurred())

		_, _, err = cache.Generate(ctx, sampleInput)
		Expect(err).To(MatchError(coachservice.ErrGenerate))
		Expect(cache.Len()).To(BeZero())
	})
})
