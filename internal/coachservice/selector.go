package coachservice

const (
	minLines = 4
	// lineSpread is how many counts are possible above minLines: 4, 5 or 6.
	lineSpread = 3
)

// Select draws between 4 and 6 candidates from pool without replacement.
// A smaller pool is returned in full (in drawn order). The returned topics
// are the TopicKey of each chosen line, for the client to send back as
// recentTopics next time.
func Select(r *Rand, pool []Candidate) (lines []string, topics []string) {
	k := minLines + r.Intn(lineSpread)

	rest := make([]Candidate, len(pool))
	copy(rest, pool)

	lines = make([]string, 0, k)
	topics = make([]string, 0, k)
	for len(lines) < k && len(rest) > 0 {
		i := r.Intn(len(rest))
		picked := rest[i]
		rest = append(rest[:i], rest[i+1:]...)

		lines = append(lines, picked.Text)
		topics = append(topics, TopicKey(picked.Text))
	}
	return lines, topics
}
