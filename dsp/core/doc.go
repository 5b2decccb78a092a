// Package core holds the numeric helpers and error kinds shared by the
// dynamics transform packages.
package core
