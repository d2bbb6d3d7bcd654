package dof

import (
	"strings"

	js "github.com/reoring/godof/jsonschema"
)

// JSONSchema describes the structure of a .dof document. Cross-field rules
// (shapes, anchors, combo references) are beyond what the schema expresses.
func JSONSchema() *js.Schema {
	rows := js.ArrayOf(js.String())
	stringOrList := &js.Schema{OneOf: []*js.Schema{js.String(), js.ArrayOf(js.String())}}
	fingers := make([]string, 0, len(Fingers))
	for _, f := range Fingers {
		fingers = append(fingers, f.String())
	}

	return &js.Schema{
		Schema:      js.Draft,
		Title:       "dof",
		Description: "Keyboard layout definition",
		Type:        "object",
		Required:    []string{"name", "board", "layers"},
		Properties: map[string]*js.Schema{
			"name":        js.String(),
			"authors":     stringOrList,
			"author":      stringOrList,
			"year":        js.Integer(),
			"date":        js.String(),
			"description": js.String(),
			"note":        js.String().WithDescription("alias of description"),
			"link":        js.String(),
			"tags":        js.ArrayOf(js.String()),
			"languages": js.ArrayOf(&js.Schema{
				Type:     "object",
				Required: []string{"language"},
				Properties: map[string]*js.Schema{
					"language": js.String(),
					"weight":   {Type: "integer", Minimum: js.Ptr(0.0), Default: 100},
				},
			}),
			"board": {OneOf: []*js.Schema{
				{Type: "string", Enum: []any{"ansi", "iso", "ortho", "colstag"}},
				js.ArrayOf(&js.Schema{Type: "string", Pattern: `^\s*(([0-9]+(\.[0-9]+)?)?k|[0-9]+(\.[0-9]+)?)?(\s+(([0-9]+(\.[0-9]+)?)?k|[0-9]+(\.[0-9]+)?))*\s*$`}).
					WithDescription("relative board: k, <N>k and <N> segments"),
				js.ArrayOf(js.ArrayOf(js.String())).WithDescription("full board: \"x y [width [height]]\" per key"),
			}},
			"anchor": {Type: "array", Items: &js.Schema{Type: "integer", Minimum: js.Ptr(0.0)}, MinItems: js.Ptr(2), MaxItems: js.Ptr(2)},
			"layers": {
				Type:                 "object",
				Required:             []string{MainLayer},
				AdditionalProperties: rows,
			},
			"fingering": {OneOf: []*js.Schema{
				{Type: "string", Enum: []any{"traditional", "standard", "angle"}},
				js.ArrayOf(js.String()).WithDescription("finger codes " + strings.Join(fingers, " ") + " or digits 0-9"),
			}},
			"combos":         js.MapOf(js.MapOf(js.String())),
			"alt_fingerings": js.ArrayOf(js.String()),
		},
		AdditionalProperties: false,
	}
}
