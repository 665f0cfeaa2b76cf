// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ToRows copies m into a fresh [][]float64.
// Solvers call it once after validation so their inner loops index plain
// slices instead of paying an interface call and error check per lookup.
// *Dense takes a fast path that slices the flat buffer row by row.
//
// Complexity: O(r*c) time and memory.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	var (
		r    = m.Rows()
		c    = m.Cols()
		out  = make([][]float64, r)
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			out[i] = append([]float64(nil), d.data[i*c:(i+1)*c]...)
		}

		return out, nil
	}
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToRows: %w", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
