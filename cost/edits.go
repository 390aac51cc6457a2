package cost

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// editSpan mirrors the (op, i0, i1, j0, j1) opcode tuples from spec
// §4.C step 1.
type editSpan struct {
	op             string
	i0, i1, j0, j1 int
}

func toRuneStrings(s []rune) []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// opcodeTag maps go-difflib's single-byte tags to the op names used by
// spec §4.C.
func opcodeTag(b byte) string {
	switch b {
	case 'r':
		return "replace"
	case 'd':
		return "delete"
	case 'i':
		return "insert"
	default:
		return "equal"
	}
}

// Edits extracts the sequence of edit operations relating src to trg,
// per spec §4.C: Levenshtein opcodes, drop equal spans, merge abutting
// spans, apply the lengthening normalization, and emit each surviving
// span as a "sSub/tSub" string key.
//
// Opcode extraction uses github.com/pmezard/go-difflib's
// SequenceMatcher (a port of Python's difflib.SequenceMatcher) rather
// than a Levenshtein-opcode library: its GetOpCodes() result is
// structurally the (tag, i1, i2, j1, j2) tuple spec §4.C works from,
// and, like the reference's Levenshtein.opcodes, is a deterministic
// (if not uniquely-minimal) alignment -- sufficient for the edit
// sub-model, which only needs a stable, reproducible decomposition.
func Edits(src, trg string) []string {
	srcRunes := []rune(src)
	trgRunes := []rune(trg)

	matcher := difflib.NewMatcher(toRuneStrings(srcRunes), toRuneStrings(trgRunes))
	spans := make([]editSpan, 0)
	for _, oc := range matcher.GetOpCodes() {
		tag := opcodeTag(oc.Tag)
		if tag == "equal" {
			continue
		}
		spans = append(spans, editSpan{op: tag, i0: oc.I1, i1: oc.I2, j0: oc.J1, j1: oc.J2})
	}

	spans = mergeConsecutiveEdits(spans)
	spans = lengthening(srcRunes, trgRunes, spans)

	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		sSub := string(srcRunes[sp.i0:sp.i1])
		tSub := string(trgRunes[sp.j0:sp.j1])
		out = append(out, strings.Join([]string{sSub, tSub}, "/"))
	}
	return out
}

// mergeConsecutiveEdits merges consecutive non-equal spans whose
// ranges abut (the next span begins exactly where the previous ended
// on both sides) into a single replace span covering the union.
func mergeConsecutiveEdits(spans []editSpan) []editSpan {
	var out []editSpan
	var pending *editSpan
	for _, sp := range spans {
		if pending != nil && sp.i0 == pending.i1 && sp.j0 == pending.j1 {
			pending.op = "replace"
			pending.i1 = sp.i1
			pending.j1 = sp.j1
			continue
		}
		if pending != nil {
			out = append(out, *pending)
		}
		cur := sp
		pending = &cur
	}
	if pending != nil {
		out = append(out, *pending)
	}
	return out
}

// lengthening extends insert/delete spans one atom left and/or right
// when the non-empty side's boundary atom repeats the atom just
// outside the span on both sides, re-labeling the result as replace.
// This converts, e.g., a pure insertion of "a" between matching "a"s
// into an "a"->"aa" replacement (spec §4.C step 4).
func lengthening(src, trg []rune, spans []editSpan) []editSpan {
	out := make([]editSpan, len(spans))
	for idx, sp := range spans {
		op, ib, ie, jb, je := sp.op, sp.i0, sp.i1, sp.j0, sp.j1
		if min(ie-ib, je-jb) > 0 {
			out[idx] = sp
			continue
		}
		useTrg := ie-ib == 0

		if ib > 0 && jb > 0 {
			var cursor rune
			if useTrg {
				cursor = trg[jb]
			} else {
				cursor = src[ib]
			}
			if src[ib-1] == cursor && trg[jb-1] == cursor {
				ib--
				jb--
				op = "replace"
			}
		}
		if ie < len(src)-1 && je < len(trg)-1 {
			var cursor rune
			if useTrg {
				cursor = trg[je-1]
			} else {
				cursor = src[ie-1]
			}
			if src[ie] == cursor && trg[je] == cursor {
				ie++
				je++
				op = "replace"
			}
		}
		out[idx] = editSpan{op: op, i0: ib, i1: ie, j0: jb, j1: je}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
