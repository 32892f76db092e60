// Package gridgraph treats a rectangular grid of runes as a graph.
//
// What:
//
//   - Grid wraps parsed puzzle text with bounds-checked access, row and
//     column views, transposition and rotation.
//   - Point and Dir give coordinates and compass headings with turn helpers.
//   - FloodFill and ConnectedComponents explore cells accepted by a
//     predicate under Conn4 or Conn8 connectivity.
//   - ToCoreGraph converts linked neighbour pairs into a *core.Graph so the
//     graph packages (bfs, dfs, flow) can run on grid input.
//
// Complexity:
//
//   - FloodFill, ConnectedComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - Transpose, RotateCW, Clone:     O(W×H).
//   - ToCoreGraph:                    O(W×H×4 + E).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Set outside the grid.
package gridgraph
