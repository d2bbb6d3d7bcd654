package dof

import (
	"strings"

	json "github.com/goccy/go-json"
)

// dofFile is the canonical on-disk form of a Document.
type dofFile struct {
	Name          string                       `json:"name" yaml:"name"`
	Authors       []string                     `json:"authors,omitempty" yaml:"authors,omitempty"`
	Year          *int                         `json:"year,omitempty" yaml:"year,omitempty"`
	Date          string                       `json:"date,omitempty" yaml:"date,omitempty"`
	Description   string                       `json:"description,omitempty" yaml:"description,omitempty"`
	Link          string                       `json:"link,omitempty" yaml:"link,omitempty"`
	Tags          []string                     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Languages     []Language                   `json:"languages,omitempty" yaml:"languages,omitempty"`
	Board         any                          `json:"board" yaml:"board"`
	Anchor        []int                        `json:"anchor,omitempty" yaml:"anchor,omitempty,flow"`
	Layers        map[string][]string          `json:"layers" yaml:"layers"`
	Fingering     any                          `json:"fingering,omitempty" yaml:"fingering,omitempty"`
	Combos        map[string]map[string]string `json:"combos,omitempty" yaml:"combos,omitempty"`
	AltFingerings []string                     `json:"alt_fingerings,omitempty" yaml:"alt_fingerings,omitempty"`
}

// MarshalJSON writes the document back as canonical .dof JSON. A generated
// shift layer, a default anchor and default languages are omitted so that
// parsing the output yields an equal Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.file())
}

// MarshalYAML renders the same canonical form for gopkg.in/yaml.v3.
func (d *Document) MarshalYAML() (any, error) { return d.file(), nil }

func (d *Document) file() dofFile {
	md := d.Metadata()
	f := dofFile{
		Name:          md.Name,
		Authors:       md.Authors,
		Year:          md.Year,
		Date:          md.Date,
		Description:   md.Description,
		Link:          md.Link,
		Tags:          md.Tags,
		Board:         encodeBoard(d.board),
		Layers:        make(map[string][]string, len(d.layers)),
		AltFingerings: nil,
	}
	if !isDefaultLanguages(md.Languages) {
		f.Languages = md.Languages
	}
	if def, ok := d.board.Type().DefaultAnchor(); !ok || def != d.anchor {
		f.Anchor = []int{d.anchor.X, d.anchor.Y}
	}
	for name, l := range d.layers {
		if name == ShiftLayer && d.generatedShift {
			continue
		}
		f.Layers[name] = l.rowStrings()
	}
	if d.fingeringName != "" {
		f.Fingering = string(d.fingeringName)
	} else {
		f.Fingering = d.fingering.rowStrings()
	}
	if len(d.combos) > 0 {
		f.Combos = make(map[string]map[string]string, len(d.combos))
		for name, combos := range d.combos {
			l := d.layers[name]
			defs := make(map[string]string, len(combos))
			for _, c := range combos {
				defs[slotRefs(l, c.Inputs)] = c.Output.String()
			}
			f.Combos[name] = defs
		}
	}
	for _, a := range d.alt {
		f.AltFingerings = append(f.AltFingerings, a.Source)
	}
	return f
}

func slotRefs(l Layer, slots []Pos) string {
	refs := make([]string, len(slots))
	for i, p := range slots {
		refs[i] = refFor(l, p).String()
	}
	return strings.Join(refs, " ")
}

func encodeBoard(b Board) any {
	switch b.Type() {
	case BoardRelative:
		rows := make([]string, len(b.relative))
		for i, segs := range b.relative {
			toks := make([]string, len(segs))
			for j, s := range segs {
				toks[j] = s.String()
			}
			rows[i] = strings.Join(toks, " ")
		}
		return rows
	case BoardFull:
		rows := make([][]string, len(b.geometry))
		for i, keys := range b.geometry {
			row := make([]string, len(keys))
			for j, k := range keys {
				row[j] = k.String()
			}
			rows[i] = row
		}
		return rows
	}
	return string(b.Type())
}

func isDefaultLanguages(ls []Language) bool {
	def := DefaultLanguages()
	return len(ls) == len(def) && ls[0] == def[0]
}
