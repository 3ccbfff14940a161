package filter

// Mode selects one of the predefined search patterns.
type Mode int

const (
	// ModeNone means no filtering: full logs are shown.
	ModeNone Mode = iota
	// ModeAll matches the common error-level keywords.
	ModeAll
	// ModeError matches "error".
	ModeError
	// ModeWarn matches "warn".
	ModeWarn
	// ModeHTTP matches HTTP error-class status codes.
	ModeHTTP
	// ModeCustom uses a user-supplied pattern.
	ModeCustom
)

// Predefined pattern strings, one per mode.
const (
	PatternAll   = "error|warn|fatal"
	PatternError = "error"
	PatternWarn  = "warn"
	PatternHTTP  = `\b(404|403|500|502|503|504)\b`
)

// Selection records one mode-selecting flag occurrence, in command-line order.
type Selection struct {
	Mode   Mode
	Custom string // pattern text when Mode is ModeCustom
}

// Spec is the resolved, immutable filter configuration for a run.
// An empty Pattern means no filtering.
type Spec struct {
	Pattern string
	RawArgs string // passthrough search-tool arguments, verbatim
}

// HasPattern reports whether filtering is enabled for this run.
func (s Spec) HasPattern() bool {
	return s.Pattern != ""
}

// Resolve maps ordered flag selections to a Spec. When multiple selections are
// given, the last one wins. This mirrors the historical CLI, where every mode
// flag overwrote a single shared variable; it is a documented quirk kept for
// invocation compatibility, not an endorsement.
func Resolve(selections []Selection, rawArgs string) Spec {
	spec := Spec{RawArgs: rawArgs}

	for _, sel := range selections {
		switch sel.Mode {
		case ModeAll:
			spec.Pattern = PatternAll
		case ModeError:
			spec.Pattern = PatternError
		case ModeWarn:
			spec.Pattern = PatternWarn
		case ModeHTTP:
			spec.Pattern = PatternHTTP
		case ModeCustom:
			spec.Pattern = sel.Custom
		case ModeNone:
			spec.Pattern = ""
		}
	}

	return spec
}
