// Package form implements the draft state of the profile/portfolio form:
// a Session aggregate holding scalar field values plus four repeatable
// sub-lists, and the generic SubList manager behind them.
//
// Rows get a stable UUID at append time so the client can key rendering
// on identity while removal reindexes by position. All mutation happens
// through the owning service, one event at a time; the package itself
// does no locking.
package form
