// Package function implements tabulated functions: a function sampled at a
// finite, strictly increasing set of x-coordinates.
//
// Two storage engines implement the TabulatedFunction interface:
//
//   - ArrayFunction: a growable contiguous buffer, O(1) index access,
//     O(n) insert and delete due to shifting.
//   - LinkedFunction: a circular doubly-linked list with a sentinel node and a
//     single-slot index cache, O(1) access to neighbors of the last touched
//     index and O(1) splicing once a node is located.
//
// Callers hold a TabulatedFunction and can swap engines without code change.
//
// # Invariants
//
// Every engine keeps at least 2 points, strictly ordered by x. The domain is
// [x[0], x[n-1]]. Operations that would break an invariant return an error
// and leave the function unchanged.
//
// # Evaluation
//
// Evaluate returns NaN outside the domain. Inside it returns the y of a point
// whose x matches within Epsilon, or linearly interpolates between the two
// bracketing points.
//
// # Error Handling
//
// Errors are the sentinels from the errs package:
//   - ErrInvalidRange, ErrInvalidCount: construction parameters are invalid
//   - ErrIndexOutOfBounds: index outside [0, count), as *errs.IndexError
//   - ErrOrderViolation: SetPoint or SetX would break ascending order
//   - ErrDuplicateX: Insert of an x that already exists
//   - ErrUnderflow: Delete with only 2 points left
//
// # Thread Safety
//
// Engines are not safe for concurrent use. Callers sharing an engine must
// serialize every call that mutates it.
package function
