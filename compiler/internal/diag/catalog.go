package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "CM0002"
	Title string `json:"title"` // short human title e.g., "identifier redefined"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, split by the phase that
// produces the code.
type Registry struct {
	Scanner map[string]CodeEntry `json:"scanner"`
	Parser  map[string]CodeEntry `json:"parser"`
	Check   map[string]CodeEntry `json:"check"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key). Domain is one of
// "scanner", "parser", "check".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "scanner":
		m = reg.Scanner
	case "parser":
		m = reg.Parser
	case "check":
		m = reg.Check
	default:
		return CodeEntry{}, false
	}
	if m == nil {
		return CodeEntry{}, false
	}
	ce, ok := m[key]
	return ce, ok
}

// kindDomains maps each Kind to the catalog domain that owns it. Kinds the
// parser and checker share (the expect-derived ones) live under "parser".
var kindDomains = map[Kind]string{
	EmptyCharOrStringLit:  "scanner",
	SemicolonExpected:     "parser",
	RParenExpected:        "parser",
	RBracketExpected:      "parser",
	UnsupportedConstruct:  "parser",
	Redefine:              "check",
	Undefine:              "check",
	ArgNumberNotMatched:   "check",
	ArgTypeNotMatched:     "check",
	CondValueNotMatched:   "check",
	ReturnValueNotAllowed: "check",
	ReturnValueRequired:   "check",
	IndexTypeNotAllowed:   "check",
	UpdateConstValue:      "check",
	CompositeLitSizeError: "check",
	SwitchTypeError:       "check",
	DefaultExpected:       "check",
}

// CodeFor resolves the catalog entry for a diagnostic kind. When the
// catalog is missing an entry it synthesizes a placeholder from the kind
// name so codes stay stable for rendering.
func CodeFor(k Kind) CodeEntry {
	if ce, ok := Lookup(kindDomains[k], k.String()); ok {
		return ce
	}
	return CodeEntry{ID: "CM0000", Title: k.String()}
}
