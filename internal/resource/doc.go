// Package resource extracts string entries from Android-style resource files
// and merges them into one identifier-to-value mapping.
//
// Only elements at exactly this position are extracted:
//
//	<resources>
//	    <string name="app_name">Demo</string>
//	</resources>
//
// A <string> nested deeper (inside <plurals>, <string-array> or any other
// element) is ignored. Values are kept verbatim, whitespace included.
//
// When several files define the same identifier the file listed last wins.
// The newest modification time across all inputs is tracked alongside the
// entries; it drives the output staleness check.
package resource
