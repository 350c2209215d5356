// Package testutil provides helpers shared by fileicons tests.
//
//   - TestEnvironment: isolates XDG directories and FILEICONS_ variables
//     so tests never read the user's config or write to their state dir
//   - NewTables: builds icon tables from an inline JSON database
//
// All test data should be defined inline, not in external files.
package testutil
