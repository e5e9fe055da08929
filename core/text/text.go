package text

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyText is returned when the input has no letters or digits.
var ErrEmptyText = errors.New("text: empty input")

// developerSuffixes are dropped from the end of developer names.
var developerSuffixes = map[string]struct{}{
	"inc": {}, "llc": {}, "ltd": {}, "limited": {}, "co": {}, "corp": {},
	"corporation": {}, "gmbh": {}, "srl": {}, "sa": {}, "ab": {}, "plc": {},
}

// glyphs would otherwise decompose into letters under NFKD ("™" -> "TM").
var glyphs = strings.NewReplacer("™", "", "®", "", "©", "", "℠", "")

// noisePhrases are removed by ConditionHeavy. Multi-word phrases come first so
// that "game of the year" is removed before its parts are considered.
var noisePhrases = []string{
	"game of the year",
	"playstation 4",
	"playstation 5",
	"xbox one",
	"xbox series x",
	"collectors edition",
}

var noiseTokens = map[string]struct{}{
	"edition": {}, "goty": {}, "remastered": {}, "definitive": {}, "deluxe": {},
	"complete": {}, "ultimate": {}, "collectors": {}, "enhanced": {},
	"anniversary": {}, "hd": {}, "pc": {}, "windows": {}, "mac": {}, "linux": {},
	"ps4": {}, "ps5": {}, "switch": {}, "vr": {},
}

// Condition normalizes s into a general purpose comparison key.
func Condition(s string) (string, error) {
	key := fold(s)
	if key == "" {
		return "", ErrEmptyText
	}
	return key, nil
}

// ConditionDeveloper normalizes a developer name, dropping corporate suffixes.
// A name made only of a suffix ("Co.") keeps it.
func ConditionDeveloper(s string) (string, error) {
	key, err := Condition(s)
	if err != nil {
		return "", err
	}

	tokens := strings.Fields(key)
	for len(tokens) > 1 {
		if _, ok := developerSuffixes[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " "), nil
}

// ConditionHeavy normalizes s and strips edition and platform qualifiers.
// The result is derived from Condition's output, so inputs with equal Condition
// keys always have equal heavy keys. When every token is noise the Condition key
// is returned unchanged.
func ConditionHeavy(s string) (string, error) {
	key, err := Condition(s)
	if err != nil {
		return "", err
	}

	padded := " " + key + " "
	for _, phrase := range noisePhrases {
		padded = strings.ReplaceAll(padded, " "+phrase+" ", " ")
	}

	var kept []string
	for _, tok := range strings.Fields(padded) {
		if _, noise := noiseTokens[tok]; noise {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return key, nil
	}
	return strings.Join(kept, " "), nil
}

// Contains reports whether the heavy key of needle occurs in the heavy key of
// haystack on token boundaries. Empty inputs never match.
func Contains(haystack, needle string) bool {
	h, err := ConditionHeavy(haystack)
	if err != nil {
		return false
	}
	n, err := ConditionHeavy(needle)
	if err != nil {
		return false
	}
	return strings.Contains(" "+h+" ", " "+n+" ")
}

// fold lower-cases s, strips accents and collapses everything that is not a
// letter or digit into single spaces.
func fold(s string) string {
	s = glyphs.Replace(s)
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	b.Grow(len(stripped))
	space := false
	for _, r := range strings.ToLower(stripped) {
		switch {
		case r == '\'' || r == '’':
			// "Assassin's" conditions like "Assassins"
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		default:
			space = true
		}
	}
	return b.String()
}
