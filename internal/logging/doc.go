// Package logging provides the leveled, printf-style logger injected
// into the recordio core.
//
// The core never configures logging itself; callers construct a Logger
// (or pass nil for a no-op one) so the log stream stays an
// observability side channel and the core stays testable without
// asserting on global state. Lines are pipe-delimited:
//
//	2006-01-02 15:04:05|WARN|file is empty: a.json
package logging
