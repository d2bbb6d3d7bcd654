package dof

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// BoardType names the kind of board a layout is defined on.
type BoardType string

const (
	BoardANSI     BoardType = "ansi"
	BoardISO      BoardType = "iso"
	BoardOrtho    BoardType = "ortho"
	BoardColstag  BoardType = "colstag"
	BoardRelative BoardType = "relative"
	BoardFull     BoardType = "full"
)

// IsPreset reports whether t is one of the built-in boards.
func (t BoardType) IsPreset() bool {
	_, ok := presetGeometries[t]
	return ok
}

// DefaultAnchor returns the anchor used when a document omits one. Only
// preset boards have a default.
func (t BoardType) DefaultAnchor() (Anchor, bool) {
	switch t {
	case BoardANSI, BoardISO:
		return Anchor{X: 1, Y: 1}, true
	case BoardOrtho, BoardColstag:
		return Anchor{}, true
	}
	return Anchor{}, false
}

// PhysicalKey is a key rectangle on the board grid. (X, Y) is the top left
// corner; one unit is the width of a regular key.
type PhysicalKey struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func xy(x, y float64) PhysicalKey { return PhysicalKey{X: x, Y: y, Width: 1, Height: 1} }
func xyw(x, y, w float64) PhysicalKey { return PhysicalKey{X: x, Y: y, Width: w, Height: 1} }
func xywh(x, y, w, h float64) PhysicalKey { return PhysicalKey{X: x, Y: y, Width: w, Height: h} }

// String renders the key in the full-board grammar, omitting a unit width
// and height.
func (k PhysicalKey) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	parts := []string{f(k.X), f(k.Y)}
	switch {
	case k.Height != 1:
		parts = append(parts, f(k.Width), f(k.Height))
	case k.Width != 1:
		parts = append(parts, f(k.Width))
	}
	return strings.Join(parts, " ")
}

// Geometry is the resolved board: rows of key rectangles in declaration order.
type Geometry [][]PhysicalKey

func (g Geometry) Rows() int { return len(g) }

// RowLen returns the number of keys in row r, or 0 when r is out of range.
func (g Geometry) RowLen(r int) int {
	if r < 0 || r >= len(g) {
		return 0
	}
	return len(g[r])
}

// Key returns the rectangle at board row r, column c.
func (g Geometry) Key(r, c int) (PhysicalKey, bool) {
	if c < 0 || c >= g.RowLen(r) {
		return PhysicalKey{}, false
	}
	return g[r][c], true
}

// Shape returns the number of keys per board row.
func (g Geometry) Shape() Shape {
	s := make(Shape, len(g))
	for i, r := range g {
		s[i] = len(r)
	}
	return s
}

func (g Geometry) clone() Geometry {
	out := make(Geometry, len(g))
	for i, r := range g {
		out[i] = append([]PhysicalKey(nil), r...)
	}
	return out
}

// Segment is one element of a relative board row: a key of the given width,
// or empty space of the given width when Key is false.
type Segment struct {
	Width float64
	Key   bool
}

func (s Segment) String() string {
	w := strconv.FormatFloat(s.Width, 'f', -1, 64)
	if !s.Key {
		return w
	}
	if s.Width == 1 {
		return "k"
	}
	return w + "k"
}

// Board is a resolved board. The variant is given by Type:
// presets carry only their name, relative boards their segments and full
// boards their explicit rectangles.
type Board struct {
	typ      BoardType
	geometry Geometry
	relative [][]Segment
}

func (b Board) Type() BoardType { return b.typ }

// Geometry returns a copy of the resolved key rectangles.
func (b Board) Geometry() Geometry { return b.geometry.clone() }

// Segments returns the rows of a relative board, nil for other boards.
func (b Board) Segments() [][]Segment {
	if b.relative == nil {
		return nil
	}
	out := make([][]Segment, len(b.relative))
	for i, r := range b.relative {
		out[i] = append([]Segment(nil), r...)
	}
	return out
}

// PresetBoard returns the built-in board of the given type.
func PresetBoard(t BoardType) (Board, bool) {
	g, ok := presetGeometries[t]
	if !ok {
		return Board{}, false
	}
	return Board{typ: t, geometry: g}, true
}

// resolveBoard dispatches on the JSON form of the board field: a string names
// a preset, an array of strings is a relative board and an array of arrays of
// strings is a full board.
func resolveBoard(raw any, p PathRef) (Board, error) {
	switch v := raw.(type) {
	case string:
		return resolvePresetBoard(v, p)
	case []any, []string:
		rows, _ := asArray(v, p)
		if len(rows) > 0 {
			if _, nested := rows[0].([]any); nested {
				return resolveFullBoard(rows, p)
			}
			if _, nested := rows[0].([]string); nested {
				return resolveFullBoard(rows, p)
			}
		}
		return resolveRelativeBoard(rows, p)
	}
	return Board{}, wrongType(p, "string or array", raw)
}

func resolvePresetBoard(name string, p PathRef) (Board, error) {
	t := BoardType(strings.ToLower(name))
	b, ok := PresetBoard(t)
	if !ok {
		return Board{}, failWith(p, CodeUnknownPreset, "unknown board '"+name+"'", "board", name)
	}
	return b, nil
}

var (
	relKeyPattern   = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)?k$`)
	relSpacePattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)
)

// parseSegment accepts `k`, `<N>k` (an N wide key) and `<N>` (N units of space).
func parseSegment(tok string) (Segment, bool) {
	if m := relKeyPattern.FindStringSubmatch(tok); m != nil {
		if m[1] == "" {
			return Segment{Width: 1, Key: true}, true
		}
		w, err := strconv.ParseFloat(m[1], 64)
		if err != nil || w <= 0 {
			return Segment{}, false
		}
		return Segment{Width: w, Key: true}, true
	}
	if relSpacePattern.MatchString(tok) {
		w, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Segment{}, false
		}
		return Segment{Width: w}, true
	}
	return Segment{}, false
}

func resolveRelativeBoard(rows []any, p PathRef) (Board, error) {
	segs := make([][]Segment, len(rows))
	geo := make(Geometry, len(rows))
	for r, raw := range rows {
		rp := p.Index(r)
		row, err := asString(raw, rp)
		if err != nil {
			return Board{}, err
		}
		x := 0.0
		keys := []PhysicalKey{}
		for _, tok := range strings.Fields(row) {
			seg, ok := parseSegment(tok)
			if !ok {
				return Board{}, failWith(rp, CodeMalformedToken,
					"board segment '"+tok+"' is not k, <N>k or <N>", "token", tok, "row", r)
			}
			if seg.Key {
				keys = append(keys, xyw(x, float64(r), seg.Width))
			}
			x += seg.Width
			segs[r] = append(segs[r], seg)
		}
		geo[r] = keys
	}
	return Board{typ: BoardRelative, geometry: geo, relative: segs}, nil
}

func resolveFullBoard(rows []any, p PathRef) (Board, error) {
	geo := make(Geometry, len(rows))
	for r, raw := range rows {
		rp := p.Index(r)
		cols, err := asStrings(raw, rp)
		if err != nil {
			return Board{}, err
		}
		keys := make([]PhysicalKey, len(cols))
		for c, s := range cols {
			k, ok := parsePhysicalKey(s)
			if !ok {
				return Board{}, failWith(rp.Index(c), CodeMalformedToken,
					"board key '"+s+"' must be 2 to 4 numbers: x y [width [height]]", "token", s, "row", r, "col", c)
			}
			keys[c] = k
		}
		geo[r] = keys
	}
	return Board{typ: BoardFull, geometry: geo}, nil
}

// parsePhysicalKey reads "x y [w [h]]" with a positive width and height.
func parsePhysicalKey(s string) (PhysicalKey, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 4 {
		return PhysicalKey{}, false
	}
	vals := []float64{0, 0, 1, 1}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return PhysicalKey{}, false
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return PhysicalKey{}, false
	}
	return xywh(vals[0], vals[1], vals[2], vals[3]), true
}
