// Package perspective builds right-handed, OpenGL-style perspective
// projection matrices from batched camera parameters.
//
// 🚀 What does it compute?
//
//	For each batch element, with f = cot(fov/2):
//
//	    ⎡ f/aspect  0        0                  0                ⎤
//	    ⎢ 0         f        0                  0                ⎥
//	    ⎢ 0         0   (far+near)/(near-far)  2·far·near/(near-far) ⎥
//	    ⎣ 0         0       -1                  0                ⎦
//
//	The camera looks down -Z in eye space and clip-space Z spans [-1, 1].
//
// ✨ Key features:
//   - batched inputs as tensor.Tensor values with shape-package broadcasting;
//   - strict domain checks (0 < fov < π, aspect > 0, near > 0, far > near)
//     executed before any matrix is assembled, never a silent clamp;
//   - closed-form partial derivatives (Jacobian) and a reverse-mode
//     Backward pass that sums gradients over broadcast axes;
//   - optional chunked parallel evaluation (WithWorkers);
//   - column-major float32 export for GPU upload (Matrix.GL).
//
// ⚙️ Usage:
//
//	m, err := perspective.RightHanded(perspective.Params{
//	  VerticalFOV: perspective.Radians(60),
//	  AspectRatio: 1.5,
//	  Near:        1,
//	  Far:         10,
//	})
//
//	batch, err := perspective.RightHandedBatch(fov, aspect, near, far,
//	  perspective.WithWorkers(4))
//
// Errors:
//   - ErrShapeMismatch   — batch shapes cannot be broadcast together.
//   - ErrInvalidArgument — a value lies outside its domain, or its matrix
//     would not be representable in float64.
//   - ErrNilInput        — a nil tensor or batch was passed.
//
// Concurrency: every function is pure; call from any number of goroutines.
package perspective
