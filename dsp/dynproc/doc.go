// Package dynproc ties the analysis, mapping and render stages into an
// offline dynamics transform.
//
// A [Session] owns the transfer envelope and the user settings for the
// lifetime of an editing session: the analysis window size, chosen from
// [WindowSizes], and the decibel or linear mapping domain. It keeps the
// most recent source analysis for display and previews the transformed
// levels before rendering. Callers create as many sessions as they need;
// enforcing a single instance is up to the host.
//
// For one-shot use without a session, see [Process].
package dynproc
