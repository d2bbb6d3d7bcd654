package dof

// run is a group of count keys sharing the same width.
type run struct {
	width float64
	count int
}

// physRow lays out runs of keys left to right starting at (x, y).
func physRow(runs []run, x, y float64) []PhysicalKey {
	var keys []PhysicalKey
	for _, r := range runs {
		for i := 0; i < r.count; i++ {
			keys = append(keys, xyw(x, y, r.width))
			x += r.width
		}
	}
	return keys
}

// presetGeometries holds the built-in boards. It is filled once at package
// initialization and never mutated; Board.Geometry hands out copies.
var presetGeometries = map[BoardType]Geometry{
	BoardANSI:    ansiGeometry(),
	BoardISO:     isoGeometry(),
	BoardOrtho:   orthoGeometry(),
	BoardColstag: colstagGeometry(),
}

func ansiGeometry() Geometry {
	return Geometry{
		physRow([]run{{1, 1}, {1, 12}, {2, 1}}, 0, 0),
		physRow([]run{{1.5, 1}, {1, 12}, {1.5, 1}}, 0, 1),
		physRow([]run{{1.75, 1}, {1, 11}, {2.25, 1}}, 0, 2),
		physRow([]run{{2.25, 1}, {1, 10}, {2.75, 1}}, 0, 3),
		physRow([]run{{1.25, 3}, {6.25, 1}, {1.25, 4}}, 0, 4),
	}
}

func isoGeometry() Geometry {
	g := Geometry{
		physRow([]run{{1, 1}, {1, 12}, {2, 1}}, 0, 0),
		physRow([]run{{1.5, 1}, {1, 12}}, 0, 1),
		physRow([]run{{1.75, 1}, {1, 12}}, 0, 2),
		physRow([]run{{1.25, 1}, {1, 11}, {2.75, 1}}, 0, 3),
		physRow([]run{{1.25, 3}, {6.25, 1}, {1.25, 4}}, 0, 4),
	}
	// The enter key spans two rows; it is approximated by a rectangle.
	g[1] = append(g[1], xywh(13.75, 2, 1.5, 2))
	return g
}

func orthoGeometry() Geometry {
	return Geometry{
		physRow([]run{{1, 10}}, 0, 0),
		physRow([]run{{1, 10}}, 0, 1),
		physRow([]run{{1, 10}}, 0, 2),
		physRow([]run{{1, 6}}, 3, 3),
	}
}

// colstagOffsets is the vertical stagger of each column.
var colstagOffsets = [10]struct{ x, dy float64 }{
	{0, 0.45}, {1, 0.15}, {2, 0}, {3, 0.15}, {4, 0.30},
	{7, 0.30}, {8, 0.15}, {9, 0}, {10, 0.15}, {11, 0.45},
}

func colstagGeometry() Geometry {
	g := make(Geometry, 0, 4)
	for row := 0; row < 3; row++ {
		keys := make([]PhysicalKey, len(colstagOffsets))
		for i, o := range colstagOffsets {
			keys[i] = xy(o.x, float64(row)+o.dy)
		}
		g = append(g, keys)
	}
	return append(g, []PhysicalKey{
		xy(2.4, 3.3), xy(3.5, 3.5), xy(4.7, 3.8),
		xy(6.3, 3.8), xy(7.5, 3.5), xy(8.6, 3.3),
	})
}
