// Package output writes the generated class to disk.
//
// Writing is gated on a single timestamp comparison: if the target file
// exists and is at least as new as the newest input, nothing is written.
// This keeps downstream compilation from being triggered on every build.
package output
