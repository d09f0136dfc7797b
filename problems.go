package username

import (
	"strings"
	"unicode/utf8"

	"github.com/louisbranch/username/internal/platform/errors/i18n"
)

// Kind identifies a broken username rule.
type Kind string

const (
	KindTooShort     Kind = "tooShort"
	KindTooLong      Kind = "tooLong"
	KindInvalidStart Kind = "invalidStart"
	KindInvalidEnd   Kind = "invalidEnd"
	KindDoubleHyphen Kind = "doubleHyphen"
	KindInvalidChars Kind = "invalidChars"
)

const (
	msgTooShort     = "Username cannot be empty"
	msgTooLong      = "Username must be 30 characters or less"
	msgInvalidStart = "Username must start with an alphanumeric character"
	msgInvalidEnd   = "Username must end with an alphanumeric character"
	msgDoubleHyphen = "Username cannot contain multiple hyphens in a row"
	msgInvalidChars = "Username may only contain alphanumeric characters and hyphens"
)

// Problem is one broken rule and its English description.
type Problem struct {
	Kind    Kind
	Message string
}

// Problems lists broken rules in check order, at most one per kind.
type Problems []Problem

type rule struct {
	kind     Kind
	message  string
	violated func(name string) bool
}

// rules run in order on every non-empty name; the order decides which
// problem Validate reports.
var rules = []rule{
	{KindTooLong, msgTooLong, func(name string) bool {
		return codeUnits(name) > MaxLength
	}},
	{KindInvalidStart, msgInvalidStart, func(name string) bool {
		r, _ := utf8.DecodeRuneInString(name)
		return !isAlphanumeric(r)
	}},
	{KindInvalidEnd, msgInvalidEnd, func(name string) bool {
		r, _ := utf8.DecodeLastRuneInString(name)
		return !isAlphanumeric(r)
	}},
	{KindDoubleHyphen, msgDoubleHyphen, func(name string) bool {
		return strings.Contains(name, "--")
	}},
	{KindInvalidChars, msgInvalidChars, func(name string) bool {
		return Punctuation.MatchString(strings.ReplaceAll(name, "-", ""))
	}},
}

// CollectProblems returns every rule name breaks, in a fixed order: tooLong,
// invalidStart, invalidEnd, doubleHyphen, invalidChars. An empty name only
// yields tooShort, and nothing when empty names are allowed. It never fails.
func CollectProblems(name string, opts ...Option) Problems {
	cfg := newConfig(opts)
	if name == "" {
		if cfg.AllowEmpty {
			return nil
		}
		return Problems{{Kind: KindTooShort, Message: msgTooShort}}
	}

	var problems Problems
	for _, r := range rules {
		if r.violated(name) {
			problems = append(problems, Problem{Kind: r.kind, Message: r.message})
		}
	}
	return problems
}

// Has reports whether kind is among the problems.
func (p Problems) Has(kind Kind) bool {
	_, ok := p.Message(kind)
	return ok
}

// Message returns the message recorded for kind.
func (p Problems) Message(kind Kind) (string, bool) {
	for _, problem := range p {
		if problem.Kind == kind {
			return problem.Message, true
		}
	}
	return "", false
}

// Kinds returns the problem kinds in order.
func (p Problems) Kinds() []Kind {
	if len(p) == 0 {
		return nil
	}
	kinds := make([]Kind, len(p))
	for i, problem := range p {
		kinds[i] = problem.Kind
	}
	return kinds
}

// Map returns the problems keyed by kind.
func (p Problems) Map() map[Kind]string {
	out := make(map[Kind]string, len(p))
	for _, problem := range p {
		out[problem.Kind] = problem.Message
	}
	return out
}

// First returns the problem Validate would report.
func (p Problems) First() (Problem, bool) {
	if len(p) == 0 {
		return Problem{}, false
	}
	return p[0], true
}

// Err returns the error for the first problem of name, or nil when there
// are none.
func (p Problems) Err(name string) error {
	first, ok := p.First()
	if !ok {
		return nil
	}
	return newError(name, first)
}

// Localize returns a copy of the problems with messages in locale. Unknown
// locales fall back to en-US.
func (p Problems) Localize(locale string) Problems {
	if len(p) == 0 {
		return nil
	}
	catalog := i18n.GetCatalog(locale)
	out := make(Problems, len(p))
	for i, problem := range p {
		code := string(problem.Kind.Code())
		message := problem.Message
		if catalog.Has(code) {
			message = catalog.Format(code, templateData(""))
		}
		out[i] = Problem{Kind: problem.Kind, Message: message}
	}
	return out
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// codeUnits counts UTF-16 code units, the unit MaxLength is expressed in.
func codeUnits(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
