package dof

import (
	"sort"
	"strconv"
	"strings"
)

// ComboRef names one input of a combo: the Nth occurrence (1-based) of Key in
// the layer. Nth 0 and 1 both mean the first occurrence.
type ComboRef struct {
	Key Key
	Nth int
}

// ParseComboRef splits a trailing "-N" occurrence index off tok. The suffix is
// only recognised when the part before it is non-empty and N is all digits.
func ParseComboRef(tok string) ComboRef {
	if i := strings.LastIndexByte(tok, '-'); i > 0 && i < len(tok)-1 {
		digits := tok[i+1:]
		if n, err := strconv.Atoi(digits); err == nil && isDigits(digits) {
			return ComboRef{Key: Classify(tok[:i]), Nth: n}
		}
	}
	return ComboRef{Key: Classify(tok)}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// String renders the reference, omitting the index for the first occurrence
// unless the key itself would read as an indexed reference.
func (r ComboRef) String() string {
	s := r.Key.String()
	if r.Nth > 1 {
		return s + "-" + strconv.Itoa(r.Nth)
	}
	if ParseComboRef(s).Key != r.Key {
		return s + "-1"
	}
	return s
}

// occurrence converts Nth to a zero-based index.
func (r ComboRef) occurrence() int {
	if r.Nth <= 1 {
		return 0
	}
	return r.Nth - 1
}

// resolve finds the slot r refers to in l.
func (r ComboRef) resolve(l Layer) (Pos, bool) {
	positions := l.Positions(r.Key)
	i := r.occurrence()
	if i >= len(positions) {
		return Pos{}, false
	}
	return positions[i], true
}

// refFor builds the reference that resolves to p in l.
func refFor(l Layer, p Pos) ComboRef {
	k, _ := l.At(p)
	for i, q := range l.Positions(k) {
		if q == p {
			if i == 0 {
				return ComboRef{Key: k}
			}
			return ComboRef{Key: k, Nth: i + 1}
		}
	}
	return ComboRef{Key: k}
}

// Combo emits Output when every input slot is pressed together.
type Combo struct {
	Inputs []Pos
	Output Key
}

// Set returns the inputs sorted row-major, the form used to compare combos.
func (c Combo) Set() []Pos {
	s := append([]Pos(nil), c.Inputs...)
	sort.Slice(s, func(i, j int) bool { return posLess(s[i], s[j]) })
	return s
}

func setKey(ps []Pos) string {
	b := strings.Builder{}
	for _, p := range ps {
		b.WriteString(p.String())
	}
	return b.String()
}

// resolveSlots resolves whitespace separated references on l. p is the path
// reported for every failure.
func resolveSlots(refs string, l Layer, p PathRef) ([]Pos, error) {
	toks := strings.Fields(refs)
	slots := make([]Pos, 0, len(toks))
	seen := make(map[Pos]string, len(toks))
	for _, tok := range toks {
		ref := ParseComboRef(tok)
		pos, ok := ref.resolve(l)
		if !ok {
			n := len(l.Positions(ref.Key))
			return nil, failWith(p, CodeUnresolvedReference,
				"'"+tok+"' has no occurrence "+strconv.Itoa(ref.occurrence()+1)+" on layer '"+l.name+"' ("+strconv.Itoa(n)+" found)",
				"layer", l.name, "ref", tok, "occurrences", n)
		}
		if prev, dup := seen[pos]; dup {
			return nil, failWith(p, CodeUnresolvedReference,
				"'"+prev+"' and '"+tok+"' both resolve to slot "+pos.String()+" on layer '"+l.name+"'",
				"layer", l.name, "ref", tok, "row", pos.Row, "col", pos.Col)
		}
		seen[pos] = tok
		slots = append(slots, pos)
	}
	return slots, nil
}

// resolveCombos resolves the combos object: layer name to an object of input
// references to output token.
func resolveCombos(raw any, layers map[string]Layer, p PathRef) (map[string][]Combo, error) {
	obj, err := asObject(raw, p)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Combo, len(obj))
	for _, name := range sortedKeys(obj) {
		lp := p.Field(name)
		l, ok := layers[name]
		if !ok {
			return nil, failWith(lp, CodeUnresolvedReference, "combos reference undeclared layer '"+name+"'", "layer", name)
		}
		defs, err := asObject(obj[name], lp)
		if err != nil {
			return nil, err
		}
		combos := make([]Combo, 0, len(defs))
		bySet := make(map[string]string, len(defs))
		for _, refs := range sortedKeys(defs) {
			cp := lp.Field(refs)
			outTok, err := asString(defs[refs], cp)
			if err != nil {
				return nil, err
			}
			slots, err := resolveSlots(refs, l, cp)
			if err != nil {
				return nil, err
			}
			if len(slots) < 2 {
				return nil, failWith(cp, CodeMalformedToken,
					"combo '"+refs+"' needs at least two keys", "layer", name, "keys", len(slots))
			}
			fields := strings.Fields(outTok)
			if len(fields) != 1 {
				return nil, failWith(cp, CodeMalformedToken,
					"combo output must be exactly one token, got "+strconv.Itoa(len(fields)), "layer", name, "tokens", len(fields))
			}
			c := Combo{Inputs: slots, Output: Classify(fields[0])}
			sk := setKey(c.Set())
			if prev, dup := bySet[sk]; dup {
				return nil, failWith(cp, CodeDuplicateCombo,
					"combo '"+refs+"' presses the same keys as '"+prev+"'", "layer", name, "other", prev)
			}
			bySet[sk] = refs
			combos = append(combos, c)
		}
		out[name] = combos
	}
	return out, nil
}

// AltFingering is an alternative way to press a pair of main-layer slots,
// kept as written alongside its resolved slots.
type AltFingering struct {
	Source string
	Slots  [2]Pos
}

// resolveAltFingerings resolves each entry, a string of two references, on
// the main layer.
func resolveAltFingerings(raw any, main Layer, p PathRef) ([]AltFingering, error) {
	entries, err := asStrings(raw, p)
	if err != nil {
		return nil, err
	}
	out := make([]AltFingering, 0, len(entries))
	for i, e := range entries {
		ep := p.Index(i)
		if n := len(strings.Fields(e)); n != 2 {
			return nil, failWith(ep, CodeMalformedToken,
				"alternative fingering must name exactly two keys, got "+strconv.Itoa(n), "keys", n)
		}
		slots, err := resolveSlots(e, main, ep)
		if err != nil {
			return nil, err
		}
		out = append(out, AltFingering{Source: e, Slots: [2]Pos{slots[0], slots[1]}})
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
