package saw

import "fmt"

// Matrix is a column-oriented table: one column per criterion, one row per
// alternative. It backs both the raw decision matrix and the normalized
// matrix, and is rebuilt on every scoring call (never cached across requests).
type Matrix struct {
	rows    int
	keys    []string
	columns map[string][]float64
}

// NewMatrix creates an empty matrix for the given number of alternatives.
func NewMatrix(rows int) *Matrix {
	return &Matrix{
		rows:    rows,
		columns: make(map[string][]float64),
	}
}

// AddColumn attaches a criterion column. Column length must match the row
// count; re-adding a key overwrites the values but keeps its position.
func (m *Matrix) AddColumn(key string, values []float64) error {
	if len(values) != m.rows {
		return fmt.Errorf("column %s has %d values, matrix has %d rows", key, len(values), m.rows)
	}
	if _, exists := m.columns[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.columns[key] = values
	return nil
}

// Column returns the values for one criterion.
func (m *Matrix) Column(key string) ([]float64, bool) {
	col, ok := m.columns[key]
	return col, ok
}

// Keys returns the column keys in insertion order.
func (m *Matrix) Keys() []string {
	return m.keys
}

// Rows returns the number of alternatives.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cell returns a single value, or 0 when the column is absent.
func (m *Matrix) Cell(key string, row int) float64 {
	col, ok := m.columns[key]
	if !ok || row < 0 || row >= len(col) {
		return 0
	}
	return col[row]
}

// Row returns one alternative's values keyed by criterion.
func (m *Matrix) Row(row int) map[string]float64 {
	out := make(map[string]float64, len(m.keys))
	for _, key := range m.keys {
		out[key] = m.columns[key][row]
	}
	return out
}
