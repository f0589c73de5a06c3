package enum

type AccountScope string

const (
	ScopeRegular    AccountScope = "regular"
	ScopeFiveMinute AccountScope = "five_minute"
)

func (t AccountScope) String() string {
	return string(t)
}

// DecodeAccountScope maps the query-string form used by the UI to a scope.
// Anything unrecognized falls back to the regular scope.
func DecodeAccountScope(s string) AccountScope {
	switch s {
	case "5min", "five_minute", "fiveMinute":
		return ScopeFiveMinute
	default:
		return ScopeRegular
	}
}

type IdentityStyle string

const (
	IdentityHumanLike    IdentityStyle = "human_like"
	IdentityProfessional IdentityStyle = "professional"
	IdentityCasual       IdentityStyle = "casual"
)

func (t IdentityStyle) String() string {
	return string(t)
}
