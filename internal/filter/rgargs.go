package filter

import (
	"strconv"
	"strings"
)

// overrides holds option changes extracted from passthrough arguments.
// Context sizes of -1 mean "not overridden".
type overrides struct {
	before int
	after  int

	forceInsensitive bool
	caseSensitive    bool
	literal          bool
	invert           bool
	word             bool
}

// parseRawArgs interprets the recognized subset of search-tool arguments and
// returns the resulting overrides plus any tokens it could not interpret.
// The original shelled out to ripgrep and forwarded these verbatim; here the
// engine applies the semantics itself, so only flags it can honor are mapped.
func parseRawArgs(raw string) (overrides, []string) {
	ov := overrides{before: -1, after: -1}
	var skipped []string

	tokens := strings.Fields(raw)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// --flag=value forms
		if name, value, found := strings.Cut(tok, "="); found && strings.HasPrefix(name, "--") {
			if n, ok := parseContextValue(value); ok {
				switch name {
				case "--after-context":
					ov.after = n
					continue
				case "--before-context":
					ov.before = n
					continue
				case "--context":
					ov.before, ov.after = n, n
					continue
				}
			}
			skipped = append(skipped, tok)
			continue
		}

		switch tok {
		case "-i", "--ignore-case":
			ov.forceInsensitive = true
		case "-s", "--case-sensitive":
			ov.caseSensitive = true
		case "-F", "--fixed-strings":
			ov.literal = true
		case "-v", "--invert-match":
			ov.invert = true
		case "-w", "--word-regexp":
			ov.word = true
		case "-A", "--after-context", "-B", "--before-context", "-C", "--context":
			if i+1 >= len(tokens) {
				skipped = append(skipped, tok)
				continue
			}
			n, ok := parseContextValue(tokens[i+1])
			if !ok {
				skipped = append(skipped, tok, tokens[i+1])
				i++
				continue
			}
			switch tok {
			case "-A", "--after-context":
				ov.after = n
			case "-B", "--before-context":
				ov.before = n
			case "-C", "--context":
				ov.before, ov.after = n, n
			}
			i++
		default:
			// Attached short forms like -A3 / -B2 / -C1.
			if len(tok) > 2 && tok[0] == '-' {
				if n, ok := parseContextValue(tok[2:]); ok {
					switch tok[:2] {
					case "-A":
						ov.after = n
						continue
					case "-B":
						ov.before = n
						continue
					case "-C":
						ov.before, ov.after = n, n
						continue
					}
				}
			}
			skipped = append(skipped, tok)
		}
	}

	return ov, skipped
}

func parseContextValue(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
