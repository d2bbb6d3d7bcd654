package dof

import "sort"

// Document is a fully resolved .dof layout. It is immutable; accessors return
// copies of internal slices and maps.
type Document struct {
	meta           Metadata
	layers         map[string]Layer
	generatedShift bool
	board          Board
	anchor         Anchor
	fingering      Fingering
	fingeringName  NamedFingering
	combos         map[string][]Combo
	alt            []AltFingering
}

func (d *Document) Name() string { return d.meta.Name }

// Metadata returns the descriptive fields.
func (d *Document) Metadata() Metadata {
	md := d.meta
	md.Authors = append([]string(nil), md.Authors...)
	md.Tags = append([]string(nil), md.Tags...)
	md.Languages = append([]Language(nil), md.Languages...)
	if md.Year != nil {
		y := *md.Year
		md.Year = &y
	}
	return md
}

// LayerNames lists main, then shift, then every other layer in name order.
func (d *Document) LayerNames() []string {
	names := make([]string, 0, len(d.layers))
	for n := range d.layers {
		if n != MainLayer && n != ShiftLayer {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return append([]string{MainLayer, ShiftLayer}, names...)
}

// Layers returns every layer by name.
func (d *Document) Layers() map[string]Layer {
	out := make(map[string]Layer, len(d.layers))
	for n, l := range d.layers {
		out[n] = l
	}
	return out
}

// Layer returns the named layer.
func (d *Document) Layer(name string) (Layer, bool) {
	l, ok := d.layers[name]
	return l, ok
}

func (d *Document) Main() Layer  { return d.layers[MainLayer] }
func (d *Document) Shift() Layer { return d.layers[ShiftLayer] }

// GeneratedShift reports whether the shift layer was derived from main.
func (d *Document) GeneratedShift() bool { return d.generatedShift }

func (d *Document) Board() Board   { return d.board }
func (d *Document) Anchor() Anchor { return d.anchor }

// Shape is the shape shared by every layer and the fingering.
func (d *Document) Shape() Shape { return d.Main().Shape() }

func (d *Document) Fingering() Fingering { return d.fingering }

// FingeringName returns the preset the fingering was expanded from, or ""
// when it was given explicitly.
func (d *Document) FingeringName() NamedFingering { return d.fingeringName }

// Combos returns the combos defined on the named layer.
func (d *Document) Combos(layer string) []Combo {
	src := d.combos[layer]
	if len(src) == 0 {
		return nil
	}
	out := make([]Combo, len(src))
	for i, c := range src {
		out[i] = Combo{Inputs: append([]Pos(nil), c.Inputs...), Output: c.Output}
	}
	return out
}

// ComboLayers lists the layers that define combos, in name order.
func (d *Document) ComboLayers() []string { return sortedKeys(d.combos) }

func (d *Document) AltFingerings() []AltFingering { return append([]AltFingering(nil), d.alt...) }

// FingerAt returns the finger assigned to slot p.
func (d *Document) FingerAt(p Pos) (Finger, bool) { return d.fingering.At(p) }

// PhysicalKey returns the board rectangle slot p is bound to via the anchor.
func (d *Document) PhysicalKey(p Pos) (PhysicalKey, bool) {
	if !d.Shape().Contains(p) {
		return PhysicalKey{}, false
	}
	return d.board.geometry.Key(p.Row+d.anchor.Y, p.Col+d.anchor.X)
}

// Output returns the key a slot produces on a layer, with transparent keys
// resolved through main.
func (d *Document) Output(layer string, p Pos) (Key, bool) {
	l, ok := d.layers[layer]
	if !ok {
		return Key{}, false
	}
	k, ok := l.At(p)
	if ok && k.IsTransparent() && layer != MainLayer {
		return d.Main().At(p)
	}
	return k, ok
}

// KeyPos locates a key on a layer.
type KeyPos struct {
	Layer string
	Pos   Pos
}

// Find lists every slot holding k, layer by layer in LayerNames order.
func (d *Document) Find(k Key) []KeyPos {
	var out []KeyPos
	for _, name := range d.LayerNames() {
		for _, p := range d.layers[name].Positions(k) {
			out = append(out, KeyPos{Layer: name, Pos: p})
		}
	}
	return out
}

// Tower returns the keys stacked on slot p, one per layer in LayerNames order.
func (d *Document) Tower(p Pos) []Key {
	if !d.Shape().Contains(p) {
		return nil
	}
	names := d.LayerNames()
	out := make([]Key, 0, len(names))
	for _, name := range names {
		k, _ := d.layers[name].At(p)
		out = append(out, k)
	}
	return out
}

// DescriptiveKey is a key together with everything known about its slot.
type DescriptiveKey struct {
	Layer    string
	Pos      Pos
	BoardRow int // row on the board, after applying the anchor
	BoardCol int
	Finger   Finger
	Physical PhysicalKey
	Key      Key
}

// Keys describes every slot of every layer, in LayerNames order and
// row-major within a layer.
func (d *Document) Keys() []DescriptiveKey {
	shape := d.Shape()
	out := make([]DescriptiveKey, 0, shape.Total()*len(d.layers))
	for _, name := range d.LayerNames() {
		l := d.layers[name]
		for r, row := range l.rows {
			for c, k := range row {
				p := Pos{Row: r, Col: c}
				f, _ := d.fingering.At(p)
				pk, _ := d.PhysicalKey(p)
				out = append(out, DescriptiveKey{
					Layer:    name,
					Pos:      p,
					BoardRow: r + d.anchor.Y,
					BoardCol: c + d.anchor.X,
					Finger:   f,
					Physical: pk,
					Key:      k,
				})
			}
		}
	}
	return out
}
