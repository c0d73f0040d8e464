// Package gen renders the Java accessor class for a merged set of string
// resources.
//
// Generation uses one fixed template with five placeholders:
//
//	<application_id>      application id, copied verbatim
//	<package_name>        package part of the configured class name
//	<name>                simple class name
//	<field_declarations>  one "public final String FIELD;" per identifier
//	<field_assignments>   one "this.FIELD = context.getString(R.string.id);" per identifier
//
// Field names are the upper-cased identifiers; lookups use the identifiers
// unchanged.
package gen
