// Package renderer turns the finance view models into markdown reports.
// Every renderer is a pure function from a view model to a string; terminal
// styling is left to the caller.
package renderer
