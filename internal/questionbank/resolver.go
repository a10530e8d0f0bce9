package questionbank

import (
	"errors"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tier is the experience bucket used to pick a pool.
type Tier string

const (
	Fresher     Tier = "fresher"
	Experienced Tier = "experienced"
)

// experiencedFrom is the number of years at which a candidate counts as experienced.
const experiencedFrom = 3

// DefaultPerTech is how many questions each technology contributes when not configured.
const DefaultPerTech = 2

var (
	firstIntRe = regexp.MustCompile(`\d+`)
	stackSepRe = regexp.MustCompile(`[,/;]+`)
)

// ParseYears reads the first integer from a free-text experience answer.
// Without a number, "fresher" or "entry" mean zero years and anything else one.
// Numbers too large for an int count as math.MaxInt.
func ParseYears(experience string) int {
	if m := firstIntRe.FindString(experience); m != "" {
		years, err := strconv.Atoi(m)
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt
		}
		if err == nil {
			return years
		}
	}
	lower := strings.ToLower(experience)
	if strings.Contains(lower, "fresher") || strings.Contains(lower, "entry") {
		return 0
	}
	return 1
}

// TierFor buckets a number of years.
func TierFor(years int) Tier {
	if years < experiencedFrom {
		return Fresher
	}
	return Experienced
}

// TierOf is TierFor(ParseYears(experience)).
func TierOf(experience string) Tier {
	return TierFor(ParseYears(experience))
}

// SplitStack splits a stack answer on commas, slashes and semicolons, keeping order.
func SplitStack(stack string) []string {
	var tokens []string
	for _, part := range stackSepRe.Split(stack, -1) {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// Tech is one resolved technology from a stack answer.
type Tech struct {
	Key     string
	Display string
}

// Resolve maps a stack answer onto bank keys in input order. Unknown tokens are
// dropped and each key is used once no matter how many aliases name it.
func (b *Bank) Resolve(stack string) []Tech {
	title := cases.Title(language.English)
	used := make(map[string]bool)

	var techs []Tech
	for _, token := range SplitStack(stack) {
		key, ok := b.Lookup(token)
		if !ok || used[key] {
			continue
		}
		used[key] = true
		techs = append(techs, Tech{Key: key, Display: title.String(token)})
	}
	return techs
}

// Item is one sampled bank question.
type Item struct {
	Tech     string
	Key      string
	Tier     Tier
	Question string
}

// Sample draws min(perTech, pool size) distinct questions per technology from the
// pools at tier. A technology with an empty pool at that tier contributes nothing.
func (b *Bank) Sample(rng *rand.Rand, techs []Tech, tier Tier, perTech int) []Item {
	var items []Item
	for _, tech := range techs {
		pool := b.technologies[tech.Key].Of(tier)
		k := min(perTech, len(pool))
		if k <= 0 {
			continue
		}
		for _, idx := range rng.Perm(len(pool))[:k] {
			items = append(items, Item{
				Tech:     tech.Display,
				Key:      tech.Key,
				Tier:     tier,
				Question: pool[idx],
			})
		}
	}
	return items
}

// Select resolves stack, buckets experience and samples the questions.
func (b *Bank) Select(rng *rand.Rand, stack, experience string, perTech int) ([]Item, Tier) {
	tier := TierOf(experience)
	return b.Sample(rng, b.Resolve(stack), tier, perTech), tier
}
