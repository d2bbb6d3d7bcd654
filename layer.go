package dof

import (
	"strconv"
	"strings"
)

// Well-known layer names.
const (
	MainLayer  = "main"
	ShiftLayer = "shift"
)

// Layer is a named grid of keys.
type Layer struct {
	name string
	rows [][]Key
}

// NewLayer builds a layer from rows of keys. Rows are copied.
func NewLayer(name string, rows [][]Key) Layer {
	cp := make([][]Key, len(rows))
	for i, r := range rows {
		cp[i] = append([]Key(nil), r...)
	}
	return Layer{name: name, rows: cp}
}

func (l Layer) Name() string { return l.name }

// Shape returns the per-row key counts.
func (l Layer) Shape() Shape {
	s := make(Shape, len(l.rows))
	for i, r := range l.rows {
		s[i] = len(r)
	}
	return s
}

// Rows returns a copy of the key grid.
func (l Layer) Rows() [][]Key { return NewLayer(l.name, l.rows).rows }

// Row returns a copy of row r, or nil when out of range.
func (l Layer) Row(r int) []Key {
	if r < 0 || r >= len(l.rows) {
		return nil
	}
	return append([]Key(nil), l.rows[r]...)
}

// At returns the key at p.
func (l Layer) At(p Pos) (Key, bool) {
	if p.Row < 0 || p.Row >= len(l.rows) || p.Col < 0 || p.Col >= len(l.rows[p.Row]) {
		return Key{}, false
	}
	return l.rows[p.Row][p.Col], true
}

// Positions lists every slot holding k, scanning rows top to bottom and each
// row left to right. The order defines occurrence numbers for combos.
func (l Layer) Positions(k Key) []Pos {
	var out []Pos
	for r, row := range l.rows {
		for c, key := range row {
			if key == k {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	}
	return out
}

// rowStrings renders the layer back into .dof row strings.
func (l Layer) rowStrings() []string {
	out := make([]string, len(l.rows))
	for i, row := range l.rows {
		toks := make([]string, len(row))
		for j, k := range row {
			toks[j] = k.String()
		}
		out[i] = strings.Join(toks, " ")
	}
	return out
}

// tokenizeRow splits a row string on whitespace runs and classifies each token.
func tokenizeRow(row string) []Key {
	fields := strings.Fields(row)
	keys := make([]Key, len(fields))
	for i, f := range fields {
		keys[i] = Classify(f)
	}
	return keys
}

// buildLayers resolves the layers object. It reports whether shift was
// synthesized from main.
func buildLayers(raw any, p PathRef) (map[string]Layer, bool, error) {
	obj, err := asObject(raw, p)
	if err != nil {
		return nil, false, err
	}
	layers := make(map[string]Layer, len(obj)+1)
	for _, name := range sortedKeys(obj) {
		lp := p.Field(name)
		rows, err := asStrings(obj[name], lp)
		if err != nil {
			return nil, false, err
		}
		grid := make([][]Key, len(rows))
		for i, row := range rows {
			grid[i] = tokenizeRow(row)
		}
		layers[name] = Layer{name: name, rows: grid}
	}

	main, ok := layers[MainLayer]
	if !ok {
		return nil, false, failWith(p.Field(MainLayer), CodeMissingRequiredField, "layers must contain a main layer", "field", MainLayer)
	}
	want := main.Shape()
	for _, name := range sortedKeys(layers) {
		if err := checkLayerShape(layers[name], want, p.Field(name)); err != nil {
			return nil, false, err
		}
	}

	generated := false
	if _, ok := layers[ShiftLayer]; !ok {
		layers[ShiftLayer] = shiftLayer(main)
		generated = true
	}

	if err := checkLayerRefs(layers, p); err != nil {
		return nil, false, err
	}
	return layers, generated, nil
}

func checkLayerShape(l Layer, want Shape, p PathRef) error {
	got := l.Shape()
	if got.Equal(want) {
		return nil
	}
	if len(got) != len(want) {
		return failWith(p, CodeShapeMismatch,
			"layer '"+l.name+"' has "+strconv.Itoa(len(got))+" rows, main has "+strconv.Itoa(len(want)),
			"layer", l.name, "rows", len(got), "expected", len(want))
	}
	for r := range got {
		if got[r] != want[r] {
			return failWith(p.Index(r), CodeShapeMismatch,
				"layer '"+l.name+"' row "+strconv.Itoa(r)+" has "+strconv.Itoa(got[r])+" keys, main has "+strconv.Itoa(want[r]),
				"layer", l.name, "row", r, "keys", got[r], "expected", want[r])
		}
	}
	return nil
}

// checkLayerRefs reports the first layer key naming an undeclared layer.
func checkLayerRefs(layers map[string]Layer, p PathRef) error {
	for _, name := range sortedKeys(layers) {
		for r, row := range layers[name].rows {
			for _, k := range row {
				if !k.IsLayer() {
					continue
				}
				if _, ok := layers[k.Text()]; !ok {
					return failWith(p.Field(name).Index(r), CodeUnresolvedReference,
						"layer key '"+k.String()+"' names an undeclared layer", "layer", k.Text())
				}
			}
		}
	}
	return nil
}
