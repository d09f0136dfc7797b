package username

import "regexp"

// Matcher reports whether a string matches a rule.
type Matcher interface {
	MatchString(s string) bool
}

// Punctuation matches any string containing a character that is not an ASCII
// letter or digit.
var Punctuation = regexp.MustCompile(`[^A-Za-z0-9]`)

// Shape matches well-formed usernames: an ASCII letter or digit, followed by
// up to 29 letters, digits or hyphens, where every hyphen is followed by a
// letter or digit.
var Shape Matcher = shapeMatcher{
	pattern: regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`),
	max:     MaxLength,
}

// shapeMatcher pairs the grammar with the length bound, since RE2 cannot
// bound the repetition count of a group whose width varies.
type shapeMatcher struct {
	pattern *regexp.Regexp
	max     int
}

func (m shapeMatcher) MatchString(s string) bool {
	// Matching strings are ASCII, so the byte length is the code unit count.
	return len(s) <= m.max && m.pattern.MatchString(s)
}

// StripPunctuation removes every character that is not an ASCII letter or
// digit, leaving case untouched.
func StripPunctuation(s string) string {
	return Punctuation.ReplaceAllString(s, "")
}
