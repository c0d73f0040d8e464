package resource

import (
	"fmt"
	"maps"
	"os"
	"time"

	"resloader-generator/internal/diagnostic"
	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
)

// ResourceSet is the combined view of all input files of one run.
type ResourceSet struct {
	// Inputs are the resource files in merge order.
	Inputs []string
	// Entries maps identifier to value; later inputs override earlier ones.
	Entries map[string]string
	// Newest is the latest modification time among the inputs that could be stat'ed.
	Newest time.Time
	// Diagnostics collects per-file failures and warnings.
	Diagnostics diagnostic.Diagnostics
}

// Merge returns a new mapping holding every entry of existing, overwritten by
// the entries of next with the same identifier. Neither argument is modified.
func Merge(existing, next map[string]string) map[string]string {
	merged := make(map[string]string, len(existing)+len(next))
	maps.Copy(merged, existing)
	maps.Copy(merged, next)

	return merged
}

// Load extracts every input in order and merges the results.
//
// A file that cannot be read or parsed contributes no entries; the failure is
// recorded in the returned set's Diagnostics and loading continues. Callers
// that treat such failures as fatal check Diagnostics.Error.
func Load(inputs []string) *ResourceSet {
	set := &ResourceSet{
		Inputs:  append([]string(nil), inputs...),
		Entries: map[string]string{},
	}

	for _, path := range inputs {
		// A parse failure still counts toward the newest timestamp; only a
		// file that cannot be stat'ed is left out of it.
		if info, err := os.Stat(path); err == nil {
			set.Newest = Newest(set.Newest, info.ModTime())
		}

		entries, err := extractFile(path, func(line int) {
			set.Diagnostics.AddWarning(diagnostic.CodeMissingName,
				fmt.Sprintf("string element without name attribute at line %d", line), path, "")
		})
		if err != nil {
			code := diagnostic.CodeMalformed
			if errors.Is(err, errors.ErrIO) {
				code = diagnostic.CodeUnreadable
			}

			set.Diagnostics.AddError(code, path, err)
			logger.Logger.Warnw("skipping resource file", "file", path, "error", err)

			continue
		}

		for id := range entries {
			if _, ok := set.Entries[id]; ok {
				set.Diagnostics.AddInfo(diagnostic.CodeOverride, "overrides an earlier definition", path, id)
			}
		}

		set.Entries = Merge(set.Entries, entries)

		logger.Logger.Debugw("extracted resource file", "file", path, "entries", len(entries))
	}

	return set
}

// Newest returns the later of two timestamps.
func Newest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}

	return a
}
