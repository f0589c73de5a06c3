package identity

const (
	passwordLength = 12

	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Password returns a 12-character string with at least one character from
// each class, shuffled. This is a usability password for throwaway mailboxes,
// not a security-critical secret; it is not suitable for anything that needs
// cryptographic randomness.
func (g *generator) Password() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	allChars := lowercaseChars + uppercaseChars + digitChars + symbolChars

	chars := make([]byte, 0, passwordLength)
	chars = append(chars,
		lowercaseChars[g.rnd.Intn(len(lowercaseChars))],
		uppercaseChars[g.rnd.Intn(len(uppercaseChars))],
		digitChars[g.rnd.Intn(len(digitChars))],
		symbolChars[g.rnd.Intn(len(symbolChars))],
	)
	for len(chars) < passwordLength {
		chars = append(chars, allChars[g.rnd.Intn(len(allChars))])
	}

	g.rnd.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}
