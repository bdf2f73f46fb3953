// SPDX-License-Identifier: MIT
// Package: perspective
//
// gl.go — export to the GPU uniform layout.
//
// Note:
//  - mat.Mat4 is column-major float32, the layout uniformMatrix4fv expects
//    with transpose=false.
//  - Narrowing to float32 happens only here; every other path is float64.

package perspective

import "github.com/seqsense/pcgol/mat"

// GL returns m as a column-major float32 matrix.
// Element (row, col) lands at index 4·col + row, so M32 = -1 is at index 11.
func (m Matrix) GL() mat.Mat4 {
	var out mat.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[4*col+row] = float32(m[row][col])
		}
	}

	return out
}

// GL converts every matrix of the batch; see Matrix.GL.
func (b *Batch) GL() []mat.Mat4 {
	out := make([]mat.Mat4, len(b.mats))
	for k, m := range b.mats {
		out[k] = m.GL()
	}

	return out
}
