// Package frustum builds batched perspective projection matrices and their
// derivatives for differentiable rendering and camera calibration.
//
// 🚀 What is frustum?
//
//	A small pure-Go stack for turning camera intrinsics into clip-space
//	transforms:
//		• Shapes: batch shapes, broadcasting and index mapping
//		• Tensors: dense float64 arrays with broadcast and its adjoint
//		• Perspective: right-handed OpenGL matrices, Jacobian, Backward
//		• Gradcheck: central-difference verification of analytic derivatives
//		• Presets: named cameras loaded from YAML
//
// ✨ Why choose frustum?
//
//   - Strict domain checks – invalid cameras fail loudly, nothing is clamped
//   - Deterministic – parallel evaluation is bit-identical to sequential
//   - GPU-ready – column-major float32 export for uniform upload
//
// Everything is organized under five subpackages:
//
//	shape/       — batch shapes, Unknown sizes, broadcasting
//	tensor/      — Tensor, BroadcastTo, SumTo
//	perspective/ — RightHanded, RightHandedBatch, Jacobian, Backward, GL
//	gradcheck/   — Numeric, Compare, Check
//	preset/      — YAML camera presets
//
// Quick example:
//
//	m, err := perspective.RightHanded(perspective.Params{
//		VerticalFOV: perspective.Radians(60), AspectRatio: 16.0 / 9, Near: 0.1, Far: 100,
//	})
//
//	go get github.com/katalvlaran/frustum
package frustum
