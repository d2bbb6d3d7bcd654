package dof

import "strconv"

// Anchor is where slot (0,0) of the layers lands on the board: X columns
// into board row Y.
type Anchor struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (a Anchor) String() string { return "[" + strconv.Itoa(a.X) + ", " + strconv.Itoa(a.Y) + "]" }

// parseAnchor reads the [x, y] form.
func parseAnchor(raw any, p PathRef) (Anchor, error) {
	arr, err := asArray(raw, p)
	if err != nil {
		return Anchor{}, err
	}
	if len(arr) != 2 {
		return Anchor{}, failWith(p, CodeInvalidType, "anchor must be [x, y]", "expected", "array of 2 integers", "length", len(arr))
	}
	var v [2]int
	for i, e := range arr {
		n, err := asInt(e, p.Index(i))
		if err != nil {
			return Anchor{}, err
		}
		if n < 0 {
			return Anchor{}, failWith(p.Index(i), CodeInvalidType, "anchor offsets must not be negative", "expected", "non-negative integer", "value", n)
		}
		v[i] = n
	}
	return Anchor{X: v[0], Y: v[1]}, nil
}

// resolveAnchor applies the board default when the document has no anchor.
func resolveAnchor(raw any, present bool, b Board, p PathRef) (Anchor, error) {
	if present {
		return parseAnchor(raw, p)
	}
	if a, ok := b.Type().DefaultAnchor(); ok {
		return a, nil
	}
	return Anchor{}, failWith(p, CodeMissingRequiredField,
		"anchor is required on "+string(b.Type())+" boards", "field", "anchor", "board", string(b.Type()))
}

// alignLayout checks that every main row r fits board row r+Y from column X.
// p is the path of the main layer.
func alignLayout(main Shape, geo Geometry, a Anchor, p PathRef) error {
	r := firstMisfit(main, geo.Shape(), a)
	if r < 0 {
		return nil
	}
	if a.Y >= geo.Rows()-r {
		return failWith(p.Index(r), CodeShapeMismatch,
			"main row "+strconv.Itoa(r)+" has no board row at anchor "+a.String(),
			"row", r, "anchor_y", a.Y, "board_rows", geo.Rows())
	}
	br := r + a.Y
	return failWith(p.Index(r), CodeShapeMismatch,
		"main row "+strconv.Itoa(r)+" needs "+strconv.Itoa(main[r])+" keys from column "+strconv.Itoa(a.X)+" on board row "+strconv.Itoa(br)+", found "+strconv.Itoa(geo.RowLen(br)),
		"row", r, "board_row", br, "offset", a.X, "keys", main[r], "available", geo.RowLen(br))
}
