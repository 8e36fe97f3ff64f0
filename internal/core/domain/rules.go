package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// RegexPrefix marks an exclusion pattern as a raw regular expression.
const RegexPrefix = "re:"

// RuleKind classifies how a single exclusion pattern matches names.
type RuleKind int

const (
	// RuleExact matches the package name verbatim.
	RuleExact RuleKind = iota
	// RuleWildcard matches with shell-style "*" globs.
	RuleWildcard
	// RuleRegex matches with a full regular expression.
	RuleRegex
)

// Rule is one compiled exclusion pattern. Matching is total: a rule either
// matches a name or it does not, there is no error path at match time.
type Rule struct {
	pattern string
	kind    RuleKind
	re      *regexp.Regexp
}

// CompileRule compiles a single pattern string. Three forms are recognized:
// a pattern starting with "re:" is a regular expression, a pattern containing
// "*" is a glob, and anything else matches exactly. Regex and glob rules are
// anchored so a pattern always describes the whole name.
func CompileRule(pattern string) (Rule, error) {
	switch {
	case strings.HasPrefix(pattern, RegexPrefix):
		expr := strings.TrimPrefix(pattern, RegexPrefix)
		re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
		if err != nil {
			return Rule{}, zerr.With(zerr.Wrap(ErrInvalidRule, err.Error()), "pattern", pattern)
		}
		return Rule{pattern: pattern, kind: RuleRegex, re: re}, nil
	case strings.Contains(pattern, "*"):
		re := regexp.MustCompile(globRegexp(pattern))
		return Rule{pattern: pattern, kind: RuleWildcard, re: re}, nil
	default:
		return Rule{pattern: pattern, kind: RuleExact}, nil
	}
}

// globRegexp translates a glob pattern into an anchored regular expression.
// Only "*" is special; every other rune is matched literally.
func globRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString(`\A`)
	for i, seg := range strings.Split(pattern, "*") {
		if i > 0 {
			b.WriteString(`.*`)
		}
		b.WriteString(regexp.QuoteMeta(seg))
	}
	b.WriteString(`\z`)
	return b.String()
}

// Matches reports whether the rule matches the given package name.
func (r Rule) Matches(name string) bool {
	if r.kind == RuleExact {
		return r.pattern == name
	}
	return r.re.MatchString(name)
}

// Kind returns how the rule matches.
func (r Rule) Kind() RuleKind {
	return r.kind
}

// Pattern returns the original pattern string the rule was compiled from.
func (r Rule) Pattern() string {
	return r.pattern
}

// RuleSet is an ordered collection of exclusion rules. Order is kept for
// reporting only: whether a name is excluded never depends on which rule
// matched first.
type RuleSet struct {
	rules []Rule
}

// CompileRules compiles every pattern into a RuleSet. The first invalid
// pattern aborts compilation.
func CompileRules(patterns []string) (RuleSet, error) {
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		r, err := CompileRule(p)
		if err != nil {
			return RuleSet{}, err
		}
		rules = append(rules, r)
	}
	return RuleSet{rules: rules}, nil
}

// Matches reports whether any rule in the set matches the name.
func (s RuleSet) Matches(name string) bool {
	for _, r := range s.rules {
		if r.Matches(name) {
			return true
		}
	}
	return false
}

// Rules returns the compiled rules in input order.
func (s RuleSet) Rules() []Rule {
	return s.rules
}

// Len returns the number of rules in the set.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Empty reports whether the set contains no rules.
func (s RuleSet) Empty() bool {
	return len(s.rules) == 0
}
