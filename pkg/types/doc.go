// Package types defines the entity records, typed field maps, timestamps,
// configuration and standard errors shared by the healthtrack storage core
// and the callers of its domain service functions.
package types
