// Package diagnostic provides error and warning reporting for a generation run.
//
// Failures while loading a single resource file do not abort the run; they are
// collected here so the caller can log them and decide whether the run as a
// whole should fail.
package diagnostic
