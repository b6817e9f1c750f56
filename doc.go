// Package neraca implements a small monthly bookkeeping system: a store of
// dated balance snapshots persisted in a flat CSV file, and a pure ratio
// engine deriving named financial metrics from them.
//
// The store favors availability over strict validation: a missing backing
// file is an empty store, malformed cells are repaired to zero, and rows
// with unparseable dates are dropped on load. Each date holds at most one
// snapshot, always the last calendar day of its reporting month.
package neraca
