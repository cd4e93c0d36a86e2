package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Neighborhood selects the lattice template used for neighbor counting.
type Neighborhood string

// Canonical neighborhood tokens. These strings are wire-stable and appear
// verbatim in persisted rules.
const (
	Moore             Neighborhood = "moore"
	VonNeumann        Neighborhood = "vonNeumann"
	ExtendedMoore     Neighborhood = "extendedMoore"
	Hexagonal         Neighborhood = "hexagonal"
	ExtendedHexagonal Neighborhood = "extendedHexagonal"
)

// Boundary selects how out-of-bounds coordinates map back into the grid.
type Boundary string

// Canonical boundary tokens, wire-stable.
const (
	Plane           Boundary = "plane"
	CylinderX       Boundary = "cylinderX"
	CylinderY       Boundary = "cylinderY"
	Torus           Boundary = "torus"
	MobiusX         Boundary = "mobiusX"
	MobiusY         Boundary = "mobiusY"
	KleinX          Boundary = "kleinX"
	KleinY          Boundary = "kleinY"
	ProjectivePlane Boundary = "projectivePlane"
)

// MaxStates bounds the decay-chain depth a rule may request.
const MaxStates = 1024

// MaxCount returns the neighbor-count ceiling for the lattice template.
func (n Neighborhood) MaxCount() int {
	switch n {
	case Moore:
		return 8
	case VonNeumann:
		return 4
	case ExtendedMoore:
		return 24
	case Hexagonal:
		return 6
	case ExtendedHexagonal:
		return 18
	}
	return 0
}

// ParseNeighborhood resolves a token to a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch Neighborhood(s) {
	case Moore, VonNeumann, ExtendedMoore, Hexagonal, ExtendedHexagonal:
		return Neighborhood(s), nil
	}
	return "", fmt.Errorf("unknown neighborhood %q", s)
}

// ParseBoundary resolves a token to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch Boundary(s) {
	case Plane, CylinderX, CylinderY, Torus, MobiusX, MobiusY, KleinX, KleinY, ProjectivePlane:
		return Boundary(s), nil
	}
	return "", fmt.Errorf("unknown boundary %q", s)
}

// Rule is the compact immutable value describing a generalized B/S rule.
// Bit k of Birth (Survive) set means a neighbor count of k triggers birth
// (survival). States is the decay-chain depth; 2 means classical Life-like.
type Rule struct {
	Birth        uint32
	Survive      uint32
	States       int
	Neighborhood Neighborhood
	Boundary     Boundary
}

// Conway returns Conway's Life (B3/S23) on a Moore torus.
func Conway() Rule {
	return Rule{
		Birth:        1 << 3,
		Survive:      1<<2 | 1<<3,
		States:       2,
		Neighborhood: Moore,
		Boundary:     Torus,
	}
}

// Validate checks the rule against its neighborhood's count ceiling and the
// supported state range. A rule that fails validation must not be applied;
// the previously-valid rule stays active.
func (r Rule) Validate() error {
	if r.States < 2 || r.States > MaxStates {
		return fmt.Errorf("states must be in [2, %d], got %d", MaxStates, r.States)
	}
	maxCount := r.Neighborhood.MaxCount()
	if maxCount == 0 {
		return fmt.Errorf("unknown neighborhood %q", string(r.Neighborhood))
	}
	if _, err := ParseBoundary(string(r.Boundary)); err != nil {
		return err
	}
	limit := uint32(1) << (maxCount + 1)
	if r.Birth >= limit {
		return fmt.Errorf("birth mask references counts above %d", maxCount)
	}
	if r.Survive >= limit {
		return fmt.Errorf("survive mask references counts above %d", maxCount)
	}
	return nil
}

// BirthAt reports whether a neighbor count of n triggers birth. Counts
// outside the mask range read as zero bits.
func (r Rule) BirthAt(n int) bool {
	if n < 0 || n > 31 {
		return false
	}
	return r.Birth&(1<<uint(n)) != 0
}

// SurviveAt reports whether a neighbor count of n sustains an alive cell.
func (r Rule) SurviveAt(n int) bool {
	if n < 0 || n > 31 {
		return false
	}
	return r.Survive&(1<<uint(n)) != 0
}

// String renders the rule in conventional B/S notation, with a /Gn suffix
// when decay states are present: "B3/S23", "B2/S/G3".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeMaskDigits(&b, r.Birth)
	b.WriteString("/S")
	writeMaskDigits(&b, r.Survive)
	if r.States > 2 {
		fmt.Fprintf(&b, "/G%d", r.States)
	}
	return b.String()
}

func writeMaskDigits(b *strings.Builder, mask uint32) {
	for k := 0; k <= 24; k++ {
		if mask&(1<<uint(k)) == 0 {
			continue
		}
		if k < 10 {
			b.WriteByte(byte('0' + k))
		} else {
			// Counts above 9 (extended neighborhoods) are rendered in
			// parentheses so the notation stays parseable.
			fmt.Fprintf(b, "(%d)", k)
		}
	}
}

// ParseBS parses conventional B/S notation, optionally with a /Gn decay
// suffix and parenthesized multi-digit counts: "B3/S23", "B2/S/G3",
// "B(10)3/S2(12)". Neighborhood and boundary keep their zero values and
// should be filled in by the caller before Validate.
func ParseBS(s string) (Rule, error) {
	r := Rule{States: 2}
	parts := strings.Split(s, "/")
	if len(parts) < 2 || len(parts) > 3 {
		return r, fmt.Errorf("rule %q: want B.../S...[/Gn]", s)
	}
	bPart, sPart := parts[0], parts[1]
	if !strings.HasPrefix(bPart, "B") || !strings.HasPrefix(sPart, "S") {
		return r, fmt.Errorf("rule %q: want B.../S...[/Gn]", s)
	}
	var err error
	if r.Birth, err = parseMaskDigits(bPart[1:]); err != nil {
		return r, fmt.Errorf("rule %q: %w", s, err)
	}
	if r.Survive, err = parseMaskDigits(sPart[1:]); err != nil {
		return r, fmt.Errorf("rule %q: %w", s, err)
	}
	if len(parts) == 3 {
		gPart := parts[2]
		if !strings.HasPrefix(gPart, "G") {
			return r, fmt.Errorf("rule %q: decay suffix must look like G4", s)
		}
		n, err := strconv.Atoi(gPart[1:])
		if err != nil || n < 2 || n > MaxStates {
			return r, fmt.Errorf("rule %q: decay states must be in [2, %d]", s, MaxStates)
		}
		r.States = n
	}
	return r, nil
}

func parseMaskDigits(s string) (uint32, error) {
	var mask uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			mask |= 1 << uint(c-'0')
		case c == '(':
			end := strings.IndexByte(s[i:], ')')
			if end < 0 {
				return 0, fmt.Errorf("unterminated count group")
			}
			n, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil || n < 0 || n > 24 {
				return 0, fmt.Errorf("bad count group %q", s[i:i+end+1])
			}
			mask |= 1 << uint(n)
			i += end
		default:
			return 0, fmt.Errorf("bad count digit %q", string(c))
		}
	}
	return mask, nil
}
