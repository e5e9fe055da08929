package text

import "strings"

// Kind selects the hint appended by Keywordize.
type Kind int

const (
	KindGame Kind = iota
	KindDeveloper
)

// Keyworded is anything that can be searched for on a provider.
type Keyworded interface {
	DisplayName() string
	KeywordKind() Kind
}

// Keywordize builds the provider search query for e, for example
// `"half life 2" game`. It returns "" when the name conditions to nothing.
func Keywordize(e Keyworded) string {
	name, err := ConditionHeavy(e.DisplayName())
	if err != nil {
		return ""
	}

	hint := "game"
	if e.KeywordKind() == KindDeveloper {
		hint = "games"
	}
	if strings.Contains(" "+name+" ", " "+hint+" ") {
		return `"` + name + `"`
	}
	return `"` + name + `" ` + hint
}

// KeywordTokens returns the quoted part of a Keywordize query split into tokens.
func KeywordTokens(query string) []string {
	start := strings.IndexByte(query, '"')
	end := strings.LastIndexByte(query, '"')
	if start < 0 || end <= start {
		return strings.Fields(query)
	}
	return strings.Fields(query[start+1 : end])
}
