// Package sqlite is the embedded store behind healthtrack.
//
// A Store owns the single handle to one database file. Opening it runs the
// schema migrations (see Migrate) and binds one Model per entity. A Model
// turns typed field maps into parameterized SQL, runs every write in its
// own transaction and converts temporal values to and from their canonical
// text form at the storage boundary (see Encode and Decode).
//
// The store can also be dumped to and loaded from one JSONL file per table
// (Store.Export, Store.Import).
package sqlite
