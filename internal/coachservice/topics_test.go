package coachservice_test

import (
	"strings"

	"fitcoach/internal/coachservice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func candidates(texts ...string) []coachservice.Candidate {
	pool := make([]coachservice.Candidate, len(texts))
	for i, t := range texts {
		pool[i] = coachservice.Candidate{Kind: coachservice.KindEvergreen, Text: t}
	}
	return pool
}

var _ = Describe("TopicKey", func() {
	DescribeTable("normalises advice lines",
		func(line, expected string) {
			Expect(coachservice.TopicKey(line)).To(Equal(expected))
		},
		Entry("drops numbers with units", "Protein is short by about 80g.", "proteinisshortbyabout"),
		Entry("drops milligrams", "Sodium is at 3000mg.", "sodiumisat"),
		Entry("drops percentages", "Body fat is at 20%.", "bodyfatisat"),
		Entry("drops decimals with units", "Aim for 2.4L a day", "aimforaday"),
		Entry("folds full-width forms", "Ｐｒｏｔｅｉｎ ８０ｇ", "protein"),
		Entry("keeps non-latin letters", "タンパク質が不足", "タンパク質が不足"),
		Entry("truncates to 32 runes", strings.Repeat("ab", 40), strings.Repeat("ab", 16)),
		Entry("empty line", "", ""),
	)

	It("maps lines that differ only in quantities to the same key", func() {
		a := coachservice.TopicKey("You're 10g under your protein goal.")
		b := coachservice.TopicKey("You're 25g under your protein goal.")
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("FilterRecent", func() {
	var pool []coachservice.Candidate

	BeforeEach(func() {
		pool = candidates(
			"Drink more water",
			"Eat protein first",
			"Keep dessert small",
			"Go easy on oil",
			"Walk after dinner",
			"Sleep before midnight",
		)
	})

	It("returns the pool untouched without recent topics", func() {
		Expect(coachservice.FilterRecent(pool, nil)).To(Equal(pool))
	})

	It("removes recently used topics when enough remain", func() {
		recent := []string{coachservice.TopicKey(pool[0].Text), coachservice.TopicKey(pool[1].Text)}

		filtered := coachservice.FilterRecent(pool, recent)
		Expect(filtered).To(HaveLen(4))
		Expect(filtered).NotTo(ContainElement(pool[0]))
		Expect(filtered).NotTo(ContainElement(pool[1]))
	})

	It("falls back to the full pool when all but two topics are recent", func() {
		recent := make([]string, 0, len(pool))
		for _, c := range pool[2:] {
			recent = append(recent, coachservice.TopicKey(c.Text))
		}

		Expect(coachservice.FilterRecent(pool, recent)).To(Equal(pool))
	})

	It("keeps a filtered pool of exactly the minimum size", func() {
		recent := []string{coachservice.TopicKey(pool[4].Text), coachservice.TopicKey(pool[5].Text)}
		Expect(coachservice.FilterRecent(pool, recent)).To(HaveLen(coachservice.MinFilteredPool))
	})

	It("ignores unknown topics", func() {
		Expect(coachservice.FilterRecent(pool, []string{"nothinglikethis"})).To(Equal(pool))
	})
})
