package coachservice

import (
	"regexp"
	"strings"
)

// Headers gives each day's message a different opener. The empty entry means
// no header at all.
var Headers = []string{
	"🔧 Maintenance-mode mini advice",
	"⚡ Today's power move",
	"🤝 Gentle nudges for today",
	"🧪 Notes from the lab",
	"🎯 Quick hits",
	"📝 Today's one-pointers",
	"",
}

// Bullets are the glyphs a rendered line may start with.
var Bullets = []string{"・", "— ", "▶ ", "✓ ", "◎ ", "• "}

type emojiRule struct {
	pattern *regexp.Regexp
	emoji   string
}

// emojiRules are applied in order; every group that matches adds its emoji once.
var emojiRules = []emojiRule{
	{regexp.MustCompile(`(?i)kcal|calorie|energy`), "🔥"},
	{regexp.MustCompile(`(?i)protein|chicken|egg|yogurt|tuna|natto`), "🍗"},
	{regexp.MustCompile(`(?i)\bfats?\b|oil|fried|frying|butter|nuts|avocado`), "🥑"},
	{regexp.MustCompile(`(?i)carb|rice|bread|oat|potato|starch|noodle`), "🍚"},
	{regexp.MustCompile(`(?i)fiber|vegetable|salad|broccoli|seaweed|greens|spinach`), "🥦"},
	{regexp.MustCompile(`(?i)water|hydrat|sodium|salt|soup|drink`), "💧"},
}

func hasBullet(line string) bool {
	for _, b := range Bullets {
		if strings.HasPrefix(line, strings.TrimSpace(b)) {
			return true
		}
	}
	return false
}

// Decorate adds the bullet (unless the line already carries one) and the
// keyword emoji to a single line.
func Decorate(line, bullet string) string {
	var sb strings.Builder
	if !hasBullet(line) {
		sb.WriteString(bullet)
	}
	sb.WriteString(line)
	for _, rule := range emojiRules {
		if rule.pattern.MatchString(line) {
			sb.WriteString(" ")
			sb.WriteString(rule.emoji)
		}
	}
	return sb.String()
}

// Render picks a header and a bullet from r and joins the decorated lines.
// It returns the decorated lines alongside the final text.
func Render(r *Rand, lines []string) (string, []string) {
	header := Headers[r.Intn(len(Headers))]
	bullet := Bullets[r.Intn(len(Bullets))]

	decorated := make([]string, len(lines))
	for i, line := range lines {
		decorated[i] = Decorate(line, bullet)
	}

	body := strings.Join(decorated, "\n")
	if header == "" {
		return body, decorated
	}
	return header + "\n" + body, decorated
}
