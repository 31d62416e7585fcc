package coachservice_test

import (
	"strings"

	"fitcoach/internal/coachservice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decorate", func() {
	DescribeTable("adds bullets and keyword emoji",
		func(line, bullet, expected string) {
			Expect(coachservice.Decorate(line, bullet)).To(Equal(expected))
		},
		Entry("protein and carbs", "Protein and carbs", "• ", "• Protein and carbs 🍗 🍚"),
		Entry("calories", "About 300 kcal left", "▶ ", "▶ About 300 kcal left 🔥"),
		Entry("hydration group matches once", "Drink water often", "• ", "• Drink water often 💧"),
		Entry("fiber and vegetables", "Add a salad for fiber", "・", "・Add a salad for fiber 🥦"),
		Entry("fat keyword", "Go easy on oil", "— ", "— Go easy on oil 🥑"),
		Entry("no keywords", "Keep going", "✓ ", "✓ Keep going"),
		Entry("existing bullet is kept", "✓ Keep going", "• ", "✓ Keep going"),
	)
})

var _ = Describe("Render", func() {
	lines := []string{"Eat protein first", "Walk after dinner", "Sleep by midnight", "Keep dessert small"}

	It("uses a known header and one bullet for every line", func() {
		for seed := uint32(0); seed < 50; seed++ {
			text, decorated := coachservice.Render(coachservice.NewRand(seed), lines)
			Expect(decorated).To(HaveLen(len(lines)))

			out := strings.Split(text, "\n")
			if len(out) == len(lines)+1 {
				Expect(coachservice.Headers).To(ContainElement(out[0]))
				out = out[1:]
			}
			Expect(out).To(Equal(decorated))

			var bullet string
			for _, b := range coachservice.Bullets {
				if strings.HasPrefix(out[0], b) {
					bullet = b
				}
			}
			Expect(bullet).NotTo(BeEmpty())
			for _, l := range out {
				Expect(l).To(HavePrefix(bullet))
			}
		}
	})

	It("sometimes omits the header", func() {
		headerless := false
		for seed := uint32(0); seed < 200 && !headerless; seed++ {
			text, _ := coachservice.Render(coachservice.NewRand(seed), lines)
			headerless = len(strings.Split(text, "\n")) == len(lines)
		}
		Expect(headerless).To(BeTrue())
	})
})
