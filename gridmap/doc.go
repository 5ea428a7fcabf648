// Package gridmap turns a rectangular text maze into an immutable
// traversability oracle for the mazepath search packages.
//
// What:
//
//   - Map wraps a [][]bool grid of open cells; it is never mutated after NewMap.
//   - IsOpen answers whether a Position may be entered (walls and
//     out-of-bounds positions are closed).
//   - Parse reads the puzzle text format: '#' wall, '.' floor,
//     'S' start tile, 'E' goal tile.
//   - Render overlays marker runes (e.g. optimal tiles) onto the grid text.
//   - Fingerprint returns a structural hash of the grid contents.
//
// Why:
//
//   - The search engine only needs a read-only oracle, so a single *Map
//     can be shared by any number of concurrent searches.
//
// Complexity:
//
//   - NewMap, Parse, Render, Fingerprint: O(W×H) time and memory.
//   - IsOpen, InBounds: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownCell: Parse met a rune outside the '#', '.', 'S', 'E' alphabet.
//   - ErrMissingMarker: Parse found no 'S' or no 'E'.
//   - ErrDuplicateMarker: Parse found more than one 'S' or 'E'.
package gridmap
