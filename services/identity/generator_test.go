package identity

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sendbun/SimpleInbox/internal/enum"
)

var localPartPattern = regexp.MustCompile(`^[a-z0-9._]+$`)

func TestLocalPart_CharacterSet(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewSource(1))

	styles := []enum.IdentityStyle{
		enum.IdentityHumanLike,
		enum.IdentityProfessional,
		enum.IdentityCasual,
	}

	for _, style := range styles {
		for i := 0; i < 500; i++ {
			local := g.LocalPart(style)
			assert.NotEmpty(t, local)
			assert.Regexp(t, localPartPattern, local, "style %s produced %q", style, local)
		}
	}
}

func TestLocalPart_ProfessionalHasNoUnderscore(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewSource(2))

	for i := 0; i < 500; i++ {
		local := g.LocalPart(enum.IdentityProfessional)
		assert.NotContains(t, local, "_")
	}
}

func TestLocalPart_Varies(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewSource(3))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[g.LocalPart(enum.IdentityHumanLike)] = true
	}
	assert.Greater(t, len(seen), 50, "expected generated local-parts to vary")
}

func TestPassword_Composition(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewSource(4)).(*generator)

	for i := 0; i < 500; i++ {
		password := g.Password()
		assert.Len(t, password, 12)
		assert.True(t, strings.ContainsAny(password, lowercaseChars), "missing lowercase in %q", password)
		assert.True(t, strings.ContainsAny(password, uppercaseChars), "missing uppercase in %q", password)
		assert.True(t, strings.ContainsAny(password, digitChars), "missing digit in %q", password)
		assert.True(t, strings.ContainsAny(password, symbolChars), "missing symbol in %q", password)
	}
}

func TestSanitizeNamePart(t *testing.T) {
	assert.Equal(t, "alsayed", sanitizeNamePart("Al-Sayed"))
	assert.Equal(t, "john", sanitizeNamePart("John"))
	assert.Equal(t, "mail", sanitizeNamePart("--"))
}
