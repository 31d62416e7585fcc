package coachservice_test

import (
	"fmt"

	"fitcoach/internal/coachservice"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func numberedPool(n int) []coachservice.Candidate {
	texts := make([]string, n)
	letters := "abcdefghijklmnopqrstuvwxyz"
	for i := range texts {
		texts[i] = fmt.Sprintf("tip %c%c", letters[i%26], letters[(i/26)%26])
	}
	return candidates(texts...)
}

var _ = Describe("Select", func() {
	It("picks between four and six distinct lines from a large pool", func() {
		pool := numberedPool(12)
		counts := map[int]bool{}

		for seed := uint32(0); seed < 200; seed++ {
			lines, topics := coachservice.Select(coachservice.NewRand(seed), pool)

			Expect(len(lines)).To(BeNumerically(">=", 4))
			Expect(len(lines)).To(BeNumerically("<=", 6))
			Expect(topics).To(HaveLen(len(lines)))

			seen := map[string]bool{}
			for _, l := range lines {
				Expect(seen).NotTo(HaveKey(l))
				seen[l] = true
			}
			counts[len(lines)] = true
		}

		Expect(counts).To(HaveLen(3))
	})

	It("returns the whole pool when it is smaller than the draw", func() {
		pool := numberedPool(2)
		lines, _ := coachservice.Select(coachservice.NewRand(4), pool)
		Expect(lines).To(ConsistOf(pool[0].Text, pool[1].Text))
	})

	It("returns nothing for an empty pool", func() {
		lines, topics := coachservice.Select(coachservice.NewRand(4), nil)
		Expect(lines).To(BeEmpty())
		Expect(topics).To(BeEmpty())
	})

	It("reports the topic key of each chosen line", func() {
		lines, topics := coachservice.Select(coachservice.NewRand(9), numberedPool(8))
		for i, l := range lines {
			Expect(topics[i]).To(Equal(coachservice.TopicKey(l)))
		}
	})

	It("does not modify the caller's pool", func() {
		pool := numberedPool(8)
		before := append([]coachservice.Candidate(nil), pool...)
		coachservice.Select(coachservice.NewRand(1), pool)
		Expect(pool).To(Equal(before))
	})
})
