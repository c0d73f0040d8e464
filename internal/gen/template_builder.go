package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"resloader-generator/internal/common"
	"resloader-generator/internal/diagnostic"
	"resloader-generator/internal/errors"
)

// Placeholders in the class template. Each is replaced everywhere it occurs.
const (
	PlaceholderApplicationID     = "<application_id>"
	PlaceholderPackageName       = "<package_name>"
	PlaceholderClassName         = "<name>"
	PlaceholderFieldDeclarations = "<field_declarations>"
	PlaceholderFieldAssignments  = "<field_assignments>"
)

// fieldData holds what one identifier contributes to the class.
type fieldData struct {
	// Field is the Java field name: the identifier upper-cased.
	Field string
	// ID is the resource identifier used for the lookup, in its original case.
	ID string
}

var (
	declarationTemplate = template.Must(template.New("declaration").Parse(
		"\n    public final String {{.Field}};"))
	assignmentTemplate = template.Must(template.New("assignment").Parse(
		"\n        this.{{.Field}} = context.getString(R.string.{{.ID}});"))
)

// fieldName turns a resource identifier into its field name.
func fieldName(id string) string {
	return strings.ToUpper(id)
}

// buildFields returns one fieldData per identifier, sorted by identifier so
// output is stable across runs.
func buildFields(entries map[string]string) []fieldData {
	ids := common.SortedKeys(entries)

	fields := make([]fieldData, 0, len(ids))
	for _, id := range ids {
		fields = append(fields, fieldData{Field: fieldName(id), ID: id})
	}

	return fields
}

// FieldCollisions warns about identifiers that only differ in case. They map
// to the same field, so the rendered class declares it more than once.
func FieldCollisions(entries map[string]string) diagnostic.Diagnostics {
	byField := make(map[string][]string)
	for _, f := range buildFields(entries) {
		byField[f.Field] = append(byField[f.Field], f.ID)
	}

	var d diagnostic.Diagnostics

	for _, field := range common.SortedKeys(byField) {
		ids := byField[field]
		if len(ids) < 2 {
			continue
		}

		d.AddWarning(diagnostic.CodeCollision,
			fmt.Sprintf("identifiers %s all map to field %s", strings.Join(ids, ", "), field), "", field)
	}

	return d
}

// buildBlocks renders the declaration and assignment blocks.
func buildBlocks(fields []fieldData) (declarations, assignments string, err error) {
	var decl, assign bytes.Buffer

	for _, f := range fields {
		if err := declarationTemplate.Execute(&decl, f); err != nil {
			return "", "", errors.Template(errors.Wrapf(err, "rendering declaration of %s", f.ID))
		}

		if err := assignmentTemplate.Execute(&assign, f); err != nil {
			return "", "", errors.Template(errors.Wrapf(err, "rendering assignment of %s", f.ID))
		}
	}

	return decl.String(), assign.String(), nil
}

// expand substitutes every placeholder in tmpl in a single pass, so text
// inserted for one placeholder is never itself expanded.
func expand(tmpl string, params map[string]string) string {
	pairs := make([]string, 0, 2*len(params))
	for _, key := range common.SortedKeys(params) {
		pairs = append(pairs, key, params[key])
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
