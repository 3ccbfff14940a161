package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	defaultBefore = 2
	defaultAfter  = 3

	// groupSeparator divides disjoint context windows in the output,
	// following the grep/ripgrep convention.
	groupSeparator = "--"
)

// Engine applies a resolved Spec to raw log text.
type Engine struct {
	spec    Spec
	re      *regexp.Regexp
	before  int
	after   int
	invert  bool
	skipped []string
}

// NewEngine compiles the Spec into an Engine. Passthrough arguments are
// interpreted here; tokens that could not be honored are reported through
// SkippedArgs rather than failing the run.
func NewEngine(spec Spec) (*Engine, error) {
	ov, skipped := parseRawArgs(spec.RawArgs)

	e := &Engine{
		spec:    spec,
		before:  defaultBefore,
		after:   defaultAfter,
		invert:  ov.invert,
		skipped: skipped,
	}
	if ov.before >= 0 {
		e.before = ov.before
	}
	if ov.after >= 0 {
		e.after = ov.after
	}

	if !spec.HasPattern() {
		return e, nil
	}

	pattern := spec.Pattern
	if ov.literal {
		pattern = regexp.QuoteMeta(pattern)
	}
	if ov.word {
		pattern = `\b(?:` + pattern + `)\b`
	}

	// Multiline mode is always on so a pattern can span line boundaries.
	flags := "(?s)"
	if caseInsensitive(spec.Pattern, ov) {
		flags = "(?is)"
	}

	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", spec.Pattern, err)
	}
	e.re = re

	return e, nil
}

// SkippedArgs returns the passthrough tokens the engine could not interpret.
func (e *Engine) SkippedArgs() []string {
	return e.skipped
}

// caseInsensitive implements smart-case: matching is case-insensitive unless
// the pattern contains an uppercase letter, subject to explicit overrides.
func caseInsensitive(pattern string, ov overrides) bool {
	if ov.forceInsensitive {
		return true
	}
	if ov.caseSensitive {
		return false
	}
	return !strings.ContainsFunc(pattern, unicode.IsUpper)
}

// Apply filters raw log text. With no pattern set the text passes through
// unchanged. Otherwise the result holds the matching lines with their context
// windows (overlapping windows merged, disjoint groups separated by a "--"
// line). Zero matches yield an empty string, not an error.
func (e *Engine) Apply(text string) string {
	if e.re == nil {
		return text
	}

	trailingNewline := strings.HasSuffix(text, "\n")
	body := strings.TrimSuffix(text, "\n")
	lines := strings.Split(body, "\n")

	// Byte offset of the start of each line, for mapping match positions.
	offsets := make([]int, len(lines))
	pos := 0
	for i, line := range lines {
		offsets[i] = pos
		pos += len(line) + 1
	}

	lineOf := func(off int) int {
		i := sort.Search(len(offsets), func(i int) bool { return offsets[i] > off }) - 1
		if i < 0 {
			i = 0
		}
		return i
	}

	matched := make([]bool, len(lines))
	for _, loc := range e.re.FindAllStringIndex(body, -1) {
		first := lineOf(loc[0])
		last := first
		if loc[1] > loc[0] {
			last = lineOf(loc[1] - 1)
		}
		for i := first; i <= last; i++ {
			matched[i] = true
		}
	}

	if e.invert {
		for i := range matched {
			matched[i] = !matched[i]
		}
	}

	include := make([]bool, len(lines))
	any := false
	for i, m := range matched {
		if !m {
			continue
		}
		any = true
		lo := i - e.before
		if lo < 0 {
			lo = 0
		}
		hi := i + e.after
		if hi >= len(lines) {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			include[j] = true
		}
	}
	if !any {
		return ""
	}

	var out []string
	prev := -1
	for i, inc := range include {
		if !inc {
			continue
		}
		if prev >= 0 && i > prev+1 {
			out = append(out, groupSeparator)
		}
		out = append(out, lines[i])
		prev = i
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}
