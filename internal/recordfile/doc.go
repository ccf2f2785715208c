// Package recordfile reads and writes structured records as JSON files
// without ever failing loudly.
//
// Every expected failure — missing file, undecodable bytes, malformed
// JSON, wrong top-level shape, filesystem trouble — converges to the
// operation's return value: Read hands back a caller-chosen default,
// Write reports a boolean, LoadInto reports an empty record or false
// depending on its mode. The injected logger is the only place the
// reason for a failure surfaces; callers branch on return values alone.
//
// Writes are not atomic. A crash between directory creation and the
// final write can leave an empty or missing file; callers needing
// stronger guarantees must layer them on top.
package recordfile
