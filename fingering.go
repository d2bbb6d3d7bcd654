package dof

import (
	"strconv"
	"strings"
)

// NamedFingering is a built-in fingering preset.
type NamedFingering string

const (
	Traditional NamedFingering = "traditional"
	Angle       NamedFingering = "angle"
)

// parseNamedFingering is case insensitive; "standard" is an alias of
// traditional.
func parseNamedFingering(s string) (NamedFingering, bool) {
	switch strings.ToLower(s) {
	case "traditional", "standard":
		return Traditional, true
	case "angle":
		return Angle, true
	}
	return "", false
}

// Fingering assigns a finger to every slot of the main layer.
type Fingering struct {
	rows [][]Finger
}

// Shape returns the per-row finger counts.
func (f Fingering) Shape() Shape {
	s := make(Shape, len(f.rows))
	for i, r := range f.rows {
		s[i] = len(r)
	}
	return s
}

// At returns the finger assigned to p.
func (f Fingering) At(p Pos) (Finger, bool) {
	if p.Row < 0 || p.Row >= len(f.rows) || p.Col < 0 || p.Col >= len(f.rows[p.Row]) {
		return 0, false
	}
	return f.rows[p.Row][p.Col], true
}

// Rows returns a copy of the finger grid.
func (f Fingering) Rows() [][]Finger {
	out := make([][]Finger, len(f.rows))
	for i, r := range f.rows {
		out[i] = append([]Finger(nil), r...)
	}
	return out
}

func (f Fingering) rowStrings() []string {
	out := make([]string, len(f.rows))
	for i, r := range f.rows {
		toks := make([]string, len(r))
		for j, fg := range r {
			toks[j] = fg.String()
		}
		out[i] = strings.Join(toks, " ")
	}
	return out
}

// fingeringPresets holds the preset fingerings over the whole preset board.
// Boards without an entry for a name do not support that preset.
var fingeringPresets = map[BoardType]map[NamedFingering][][]Finger{
	BoardANSI: {
		Traditional: {
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP},
			{LP, LP, LT, LT, LT, RT, RT, RP},
		},
		Angle: {
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP},
			{LP, LR, LM, LI, LI, LI, RI, RI, RM, RR, RP, RP},
			{LP, LP, LT, LT, LT, RT, RT, RP},
		},
	},
	BoardISO: {
		Traditional: {
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP},
			{LP, LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP},
			{LP, LP, LT, LT, LT, RT, RT, RP},
		},
		Angle: {
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, RI, RI, RM, RR, RP, RP, RP},
			{LP, LP, LR, LM, LI, LI, LI, RI, RI, RM, RR, RP, RP},
			{LP, LP, LT, LT, LT, RT, RT, RP},
		},
	},
	BoardOrtho: {
		Traditional: matrixFingering,
	},
	BoardColstag: {
		Traditional: matrixFingering,
	},
}

var matrixFingering = [][]Finger{
	{LP, LR, LM, LI, LI, RI, RI, RM, RR, RP},
	{LP, LR, LM, LI, LI, RI, RI, RM, RR, RP},
	{LP, LR, LM, LI, LI, RI, RI, RM, RR, RP},
	{LT, LT, LT, RT, RT, RT},
}

// PresetFingering returns the full-board fingering of a preset.
func PresetFingering(t BoardType, name NamedFingering) (Fingering, bool) {
	rows, ok := fingeringPresets[t][name]
	if !ok {
		return Fingering{}, false
	}
	return Fingering{rows: rows}.clone(), true
}

func (f Fingering) clone() Fingering { return Fingering{rows: f.Rows()} }

// cut returns the part of f covered by a layout of shape s placed at a.
func (f Fingering) cut(s Shape, a Anchor) (Fingering, bool) {
	if firstMisfit(s, f.Shape(), a) >= 0 {
		return Fingering{}, false
	}
	rows := make([][]Finger, len(s))
	for r, n := range s {
		rows[r] = append([]Finger(nil), f.rows[r+a.Y][a.X:a.X+n]...)
	}
	return Fingering{rows: rows}, true
}

// resolveFingering returns the per-slot fingering and, for presets, its name.
func resolveFingering(raw any, present bool, b Board, a Anchor, main Shape, p PathRef) (Fingering, NamedFingering, error) {
	if !present {
		if !b.Type().IsPreset() {
			return Fingering{}, "", failWith(p, CodeMissingRequiredField,
				"fingering is required on "+string(b.Type())+" boards", "field", "fingering", "board", string(b.Type()))
		}
		raw = string(Traditional)
	}
	switch v := raw.(type) {
	case string:
		return resolveNamedFingering(v, b, a, main, p)
	case []any, []string:
		rows, err := asStrings(v, p)
		if err != nil {
			return Fingering{}, "", err
		}
		f, err := parseExplicitFingering(rows, main, p)
		return f, "", err
	}
	return Fingering{}, "", wrongType(p, "string or array", raw)
}

func resolveNamedFingering(s string, b Board, a Anchor, main Shape, p PathRef) (Fingering, NamedFingering, error) {
	name, ok := parseNamedFingering(s)
	if !ok {
		return Fingering{}, "", failWith(p, CodeUnknownPreset, "unknown fingering '"+s+"'", "fingering", s)
	}
	full, ok := PresetFingering(b.Type(), name)
	if !ok {
		return Fingering{}, "", failWith(p, CodeUnknownPreset,
			"fingering '"+string(name)+"' is not available on "+string(b.Type())+" boards",
			"fingering", string(name), "board", string(b.Type()))
	}
	f, ok := full.cut(main, a)
	if !ok {
		return Fingering{}, "", failWith(p, CodeUnknownPreset,
			"fingering '"+string(name)+"' does not cover main shape "+main.String()+" at anchor "+a.String(),
			"fingering", string(name), "board", string(b.Type()), "shape", main.String())
	}
	return f, name, nil
}

func parseExplicitFingering(rows []string, main Shape, p PathRef) (Fingering, error) {
	grid := make([][]Finger, len(rows))
	for r, row := range rows {
		toks := strings.Fields(row)
		fs := make([]Finger, len(toks))
		for c, t := range toks {
			f, ok := ParseFinger(t)
			if !ok {
				return Fingering{}, failWith(p.Index(r), CodeMalformedToken,
					"'"+t+"' is not a finger (LP..RP or 0..9)", "token", t, "row", r, "col", c)
			}
			fs[c] = f
		}
		grid[r] = fs
	}
	f := Fingering{rows: grid}
	got := f.Shape()
	if got.Equal(main) {
		return f, nil
	}
	if len(got) != len(main) {
		return Fingering{}, failWith(p, CodeShapeMismatch,
			"fingering has "+strconv.Itoa(len(got))+" rows, main has "+strconv.Itoa(len(main)),
			"rows", len(got), "expected", len(main))
	}
	for r := range got {
		if got[r] != main[r] {
			return Fingering{}, failWith(p.Index(r), CodeShapeMismatch,
				"fingering row "+strconv.Itoa(r)+" has "+strconv.Itoa(got[r])+" fingers, main has "+strconv.Itoa(main[r]),
				"row", r, "fingers", got[r], "expected", main[r])
		}
	}
	return f, nil
}
