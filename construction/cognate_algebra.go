package construction

import (
	"fmt"
	"strings"

	"github.com/Waino/morfessor-cognates/merrors"
)

// CognateAlgebra implements Algebra[Cognate]. Per the spec's resolved
// Open Question, this is the "authoritative" variant: a WILDCARD side
// contributes length 2 (not 1) for split-enumeration purposes, and
// to-/from-string uses the U+FFE8 delimiter (not '/').
type CognateAlgebra struct {
	interner *Interner
}

// NewCognateAlgebra constructs a CognateAlgebra using the package-wide
// atom arena.
func NewCognateAlgebra() *CognateAlgebra {
	return &CognateAlgebra{interner: Atoms}
}

var _ Algebra[Cognate] = (*CognateAlgebra)(nil)

// realLen is the actual atom count of a side (0 for wildcard).
func realLen(s Side) int {
	if s.Wildcard {
		return 0
	}
	return len([]rune(s.Value))
}

// splitRangeLen is the length used when enumerating split positions: a
// wildcard side always has exactly one phantom interior position, which
// is achieved by treating its length as 2 (spec §4.A).
func splitRangeLen(s Side) int {
	if s.Wildcard {
		return 2
	}
	return realLen(s)
}

func (a *CognateAlgebra) Length(c Cognate) int {
	// Atom count is per-side and independent; as a single scalar (used
	// by Viterbi's AllowLongerUnkSplits branch; IsAtom checks each side
	// itself) we report the sum of real (non-wildcard) lengths.
	return realLen(c.Src) + realLen(c.Trg)
}

func (a *CognateAlgebra) IsAtom(c Cognate) bool {
	if !c.Src.Wildcard && realLen(c.Src) > 1 {
		return false
	}
	if !c.Trg.Wildcard && realLen(c.Trg) > 1 {
		return false
	}
	return true
}

func subSlice(s Side, start, stop int) Side {
	if s.Wildcard {
		return Wildcard
	}
	rs := runes(s.Value)
	return Atom(sliceRunes(rs, start, stop))
}

func (a *CognateAlgebra) Slice(c Cognate, start, stop Loc) Cognate {
	si, sj := 0, 0
	ei, ej := realLen(c.Src), realLen(c.Trg)
	if !start.None {
		si, sj = start.I, start.J
	}
	if !stop.None {
		ei, ej = stop.I, stop.J
	}
	return Cognate{
		Src: subSlice(c.Src, si, ei),
		Trg: subSlice(c.Trg, sj, ej),
	}
}

// validCognateSplit reports whether i is a legal interior split index for
// side s. A wildcard side accepts any coupled index unconditionally: it
// always slices to WILDCARD regardless of where it is cut, since a
// projection is split at its coupled pair's chosen location rather than
// at a location of its own (reference: CognateModel._recursive_split's
// wild_src/wild_trg handling, ported as cognateWildcardHook).
func validCognateSplit(s Side, i int) bool {
	if s.Wildcard {
		return true
	}
	return 0 < i && i < realLen(s)
}

func (a *CognateAlgebra) Split(c Cognate, loc Loc) (Cognate, Cognate) {
	if loc.None {
		panic("construction: cognate split requires a concrete location")
	}
	if !validCognateSplit(c.Src, loc.I) || !validCognateSplit(c.Trg, loc.J) {
		panic(fmt.Sprintf("construction: invalid cognate split location %v", loc))
	}
	prefix := Cognate{Src: subSlice(c.Src, 0, loc.I), Trg: subSlice(c.Trg, 0, loc.J)}
	suffix := Cognate{Src: subSlice(c.Src, loc.I, realLen(c.Src)), Trg: subSlice(c.Trg, loc.J, realLen(c.Trg))}
	return prefix, suffix
}

func (a *CognateAlgebra) SplitN(c Cognate, locs []Loc) []Cognate {
	if len(locs) == 1 {
		prefix, suffix := a.Split(c, locs[0])
		return []Cognate{prefix, suffix}
	}
	out := make([]Cognate, 0, len(locs)+1)
	prev := Loc{I: 0, J: 0}
	for _, l := range locs {
		if l.None || !validCognateSplit(c.Src, l.I) || l.I <= prev.I || !validCognateSplit(c.Trg, l.J) || l.J <= prev.J {
			panic(fmt.Sprintf("construction: invalid cognate split locations %v", locs))
		}
		out = append(out, Cognate{
			Src: subSlice(c.Src, prev.I, l.I),
			Trg: subSlice(c.Trg, prev.J, l.J),
		})
		prev = l
	}
	out = append(out, Cognate{
		Src: subSlice(c.Src, prev.I, realLen(c.Src)),
		Trg: subSlice(c.Trg, prev.J, realLen(c.Trg)),
	})
	return out
}

func (a *CognateAlgebra) SplitLocations(c Cognate, start, stop Loc) []Loc {
	si, sj := 0, 0
	ei, ej := splitRangeLen(c.Src), splitRangeLen(c.Trg)
	if !start.None {
		si, sj = start.I, start.J
	}
	if !stop.None {
		ei, ej = stop.I, stop.J
	}
	var out []Loc
	for gi := si + 1; gi < ei; gi++ {
		for pi := sj + 1; pi < ej; pi++ {
			out = append(out, Loc{I: gi, J: pi})
		}
	}
	return out
}

func (a *CognateAlgebra) ForceSplitLocations(c Cognate) []Loc { return nil }

func (a *CognateAlgebra) PartsToSplitLocs(parts []Cognate) []Loc {
	if len(parts) <= 1 {
		return nil
	}
	out := make([]Loc, 0, len(parts)-1)
	curI, curJ := 0, 0
	for _, p := range parts[:len(parts)-1] {
		if !p.Src.Wildcard {
			curI += realLen(p.Src)
		}
		if !p.Trg.Wildcard {
			curJ += realLen(p.Trg)
		}
		out = append(out, Loc{I: curI, J: curJ})
	}
	return out
}

func (a *CognateAlgebra) FromString(s string) (Cognate, error) {
	parts := strings.SplitN(s, string(CognateDelim), 2)
	if len(parts) != 2 {
		return Cognate{}, fmt.Errorf("%w: cognate string %q missing delimiter", merrors.ErrInvalidArgument, s)
	}
	src, trg := Wildcard, Wildcard
	if parts[0] != "" {
		src = Atom(a.interner.Intern(parts[0]))
	}
	if parts[1] != "" {
		trg = Atom(a.interner.Intern(parts[1]))
	}
	return NewCognate(src, trg)
}

func (a *CognateAlgebra) ToString(c Cognate) string {
	return c.Src.String() + string(CognateDelim) + c.Trg.String()
}

func (a *CognateAlgebra) CorpusKey(c Cognate) Cognate { return c }
func (a *CognateAlgebra) LexKey(c Cognate) Cognate    { return c }

// Type builds a Cognate pair from two sides, mirroring the Python
// reference's `cc.type(src, trg)` constructor used to build wildcard
// projections during recursive split.
func (a *CognateAlgebra) Type(src, trg Side) Cognate {
	return Cognate{Src: src, Trg: trg}
}
