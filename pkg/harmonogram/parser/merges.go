package parser

// MergeRegion is a merged cell rectangle. Rows and columns are 1-indexed
// and inclusive. Only the top-left anchor cell holds content; the other
// member cells are empty but still consume their rows during a column walk.
type MergeRegion struct {
	MinRow, MinCol, MaxRow, MaxCol int
}

// Height returns the region's row span.
func (m MergeRegion) Height() int { return m.MaxRow - m.MinRow + 1 }

// IsAnchor reports whether (row, col) is the region's top-left cell.
func (m MergeRegion) IsAnchor(row, col int) bool {
	return row == m.MinRow && col == m.MinCol
}

type cellKey struct {
	row, col int
}

// mergeMap resolves any cell coordinate to the merge region containing it.
type mergeMap map[cellKey]MergeRegion

// buildMergeMap indexes every cell inside every region by its coordinates.
func buildMergeMap(regions []MergeRegion) mergeMap {
	m := make(mergeMap)
	for _, reg := range regions {
		for r := reg.MinRow; r <= reg.MaxRow; r++ {
			for c := reg.MinCol; c <= reg.MaxCol; c++ {
				m[cellKey{r, c}] = reg
			}
		}
	}
	return m
}

// lookup returns the region containing the cell. ok is false for cells
// outside every region, which behave as unmerged 1x1 cells.
func (m mergeMap) lookup(row, col int) (MergeRegion, bool) {
	reg, ok := m[cellKey{row, col}]
	return reg, ok
}
