package identity

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/enum"
)

// generator mints plausible human-looking local-parts from weighted name and
// format pools. It makes no uniqueness guarantee; a duplicate address is a
// provider-level conflict, not a generator defect.
type generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator() interfaces.IdentityGenerator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewGeneratorWithSource(src rand.Source) interfaces.IdentityGenerator {
	return &generator{rnd: rand.New(src)}
}

func (g *generator) LocalPart(style enum.IdentityStyle) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := sanitizeNamePart(g.pick(firstNames))
	last := sanitizeNamePart(g.pick(lastNames))
	adjective := sanitizeNamePart(g.pick(adjectives))
	number := g.rnd.Intn(999) + 1

	var formats []string
	switch style {
	case enum.IdentityProfessional:
		formats = []string{
			fmt.Sprintf("%s.%s", first, last),
			fmt.Sprintf("%s%s", first, last),
			fmt.Sprintf("%s%s%d", first, last, number),
			fmt.Sprintf("%s%s", first[:1], last),
			fmt.Sprintf("%s.%s", first[:1], last),
			fmt.Sprintf("%s%s%d", first, last[:1], number),
		}
	case enum.IdentityCasual:
		formats = []string{
			fmt.Sprintf("%s%d", first, number),
			fmt.Sprintf("%s.%s", first, adjective),
			fmt.Sprintf("%s.%s", adjective, first),
			fmt.Sprintf("%s%s%d", first, adjective, number),
			fmt.Sprintf("%s_%s", first, adjective),
			fmt.Sprintf("%s_%s%d", adjective, first, number),
		}
	default: // human-like
		formats = []string{
			fmt.Sprintf("%s%d", first, number),
			fmt.Sprintf("%s.%s", first, last),
			fmt.Sprintf("%s.%s", first, adjective),
			fmt.Sprintf("%s.%s", adjective, first),
			fmt.Sprintf("%s%s%d", first, adjective, number),
			fmt.Sprintf("%s_%s", first, last),
			fmt.Sprintf("%s_%s", first, adjective),
			fmt.Sprintf("%s_%s%d", adjective, first, number),
			fmt.Sprintf("%s%s%d", first, last, number),
			fmt.Sprintf("%s.%s%d", first, last, number),
		}
	}

	return formats[g.rnd.Intn(len(formats))]
}

func (g *generator) pick(pool []string) string {
	return pool[g.rnd.Intn(len(pool))]
}

// sanitizeNamePart lowercases a pool entry and strips anything outside
// [a-z0-9], so templated local-parts stay within the address-safe set.
func sanitizeNamePart(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "mail"
	}
	return b.String()
}
