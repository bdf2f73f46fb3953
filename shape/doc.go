// Package shape implements broadcast-shape inference over ordered lists of
// dimension sizes.
//
// 🚀 What is a batch shape?
//
//	Every batched input of the perspective builder is an n-d array whose
//	dimensions are all "batch" dimensions: one camera per element. Several
//	inputs are combined element-wise, so their shapes must agree.
//
// ✨ Broadcasting rule used across the module:
//   - rank-0 shapes (scalars) combine with anything;
//   - all non-scalar shapes must share one rank (no implicit leading axes);
//   - per axis the sizes must be equal, or one of them is 1 (stretched) or
//     Unknown (unbounded, matches any size).
//
// Violations are reported as ErrShapeMismatch, whose message reads
// "shape: not all batch dimensions are identical".
//
// ⚙️ Usage:
//
//	out, err := shape.Broadcast(shape.Shape{2, 1}, shape.Shape{2, 3})
//	// out == Shape{2, 3}
//
//	offs, _ := shape.Offsets(shape.Shape{2, 1}, out)
//	// offs == [0 0 0 1 1 1]: flat source index for every destination element
//
// Broadcast is computed once and reused both to validate inputs and to size
// the output, so the two can never disagree.
package shape
