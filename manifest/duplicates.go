package manifest

import (
	"fmt"
	"strings"
)

// DuplicatePolicy decides what Parse does with a dependency that is declared
// more than once in the same configuration. Two declarations are duplicates
// when their configuration, group and artifact match; versions may differ.
type DuplicatePolicy int

const (
	// AllowDuplicates keeps every declaration.
	AllowDuplicates DuplicatePolicy = iota
	// RejectDuplicates fails the parse with ErrDuplicateDependency.
	RejectDuplicates
	// LastWins keeps only the last declaration, at its own position.
	LastWins
)

func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case LastWins:
		return "last-wins"
	default:
		return "allow"
	}
}

// ParseDuplicatePolicy reads a policy name. Empty means AllowDuplicates.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allow", "keep", "permit":
		return AllowDuplicates, nil
	case "reject", "error", "fail":
		return RejectDuplicates, nil
	case "last-wins", "lastwins", "last", "override":
		return LastWins, nil
	default:
		return AllowDuplicates, fmt.Errorf("Unknown duplicates policy %q", s)
	}
}

func duplicateKey(d Dependency) string {
	return string(d.Configuration) + "|" + d.Coordinate.Name()
}

func (p DuplicatePolicy) apply(deps []Dependency) ([]Dependency, error) {
	switch p {
	case RejectDuplicates:
		first := map[string]Dependency{}
		for _, d := range deps {
			k := duplicateKey(d)
			if prev, ok := first[k]; ok {
				return nil, &ParseError{
					Kind:  ErrDuplicateDependency,
					Line:  d.Line,
					Block: "dependencies",
					Text:  d.Coordinate.String(),
					Msg:   fmt.Sprintf("%s %s already declared on line %d", d.Configuration, d.Coordinate.Name(), prev.Line),
				}
			}
			first[k] = d
		}
		return deps, nil
	case LastWins:
		last := map[string]int{}
		for i, d := range deps {
			last[duplicateKey(d)] = i
		}
		kept := make([]Dependency, 0, len(last))
		for i, d := range deps {
			if last[duplicateKey(d)] == i {
				kept = append(kept, d)
			}
		}
		return kept, nil
	default:
		return deps, nil
	}
}
