package gen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resloader-generator/internal/config"
	"resloader-generator/internal/diagnostic"
	"resloader-generator/internal/errors"
)

func testConfig() *config.GenerationConfig {
	return &config.GenerationConfig{
		ApplicationID: "com.x",
		ClassName:     "com.x.gen.R2",
		SrcDir:        "/out",
		Inputs:        []string{"strings.xml"},
	}
}

func TestGenerator_Render_SingleEntry(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	unit, err := g.Render(map[string]string{"app_name": "Demo"}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/out", "com", "x", "gen", "R2.java"), unit.Path)
	assert.Equal(t, 1, unit.Fields)

	content := string(unit.Content)
	assert.Contains(t, content, "package com.x.gen;")
	assert.Contains(t, content, "import com.x.R;")
	assert.Contains(t, content, "public final class R2 {")
	assert.Contains(t, content, `public static final String APPLICATION_ID = "com.x";`)
	assert.Contains(t, content, "public R2(Context context) {")
	assert.Contains(t, content, "    public final String APP_NAME;")
	assert.Contains(t, content, "        this.APP_NAME = context.getString(R.string.app_name);")
	assert.NotContains(t, content, "<", "no placeholder left behind")
}

func TestGenerator_Render_FieldNamesAndLookupKeys(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	entries := map[string]string{
		"welcomeMessage": "Welcome",
		"title":          "Title",
		"error_404":      "Not found",
	}

	unit, err := g.Render(entries, testConfig())
	require.NoError(t, err)

	content := string(unit.Content)
	for id := range entries {
		field := strings.ToUpper(id)
		assert.Contains(t, content, "public final String "+field+";")
		assert.Contains(t, content, "this."+field+" = context.getString(R.string."+id+");")
	}
}

func TestGenerator_Render_DeterministicOrder(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	entries := map[string]string{"zeta": "z", "alpha": "a", "mid": "m", "Beta": "b"}

	first, err := g.Render(entries, testConfig())
	require.NoError(t, err)

	for range 10 {
		again, err := g.Render(entries, testConfig())
		require.NoError(t, err)
		assert.Equal(t, first.Content, again.Content)
	}

	content := string(first.Content)
	order := []string{"BETA;", "ALPHA;", "MID;", "ZETA;"}
	last := -1

	for _, decl := range order {
		idx := strings.Index(content, "public final String "+decl)
		require.GreaterOrEqual(t, idx, 0, decl)
		assert.Greater(t, idx, last, "declarations sorted by identifier")
		last = idx
	}
}

func TestGenerator_Render_NoEntries(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	unit, err := g.Render(map[string]string{}, testConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, unit.Fields)
	assert.NotContains(t, string(unit.Content), "public final String ")
	assert.Contains(t, string(unit.Content), "public R2(Context context) {")
}

func TestGenerator_Render_ClassNameWithoutPackage(t *testing.T) {
	cfg := testConfig()
	cfg.ClassName = "Strings"

	_, err := NewGenerator(DefaultGeneratorConfig()).Render(map[string]string{"a": "A"}, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestGenerator_Render_EmptyTemplate(t *testing.T) {
	_, err := NewGenerator(GeneratorConfig{Template: "  \n"}).Render(map[string]string{"a": "A"}, testConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTemplate))
}

func TestGenerator_Render_RepeatedPlaceholders(t *testing.T) {
	tmpl := "<name>/<name>|<package_name>|<application_id>|<application_id>|<field_declarations>|<field_assignments>"

	unit, err := NewGenerator(GeneratorConfig{Template: tmpl}).Render(map[string]string{"k": "v"}, testConfig())
	require.NoError(t, err)

	assert.Equal(t,
		"R2/R2|com.x.gen|com.x|com.x|\n    public final String K;|\n        this.K = context.getString(R.string.k);",
		string(unit.Content))
}

func TestExpand_SinglePass(t *testing.T) {
	// A value containing a placeholder is inserted literally.
	got := expand("<application_id> <name>", map[string]string{
		PlaceholderApplicationID: "<name>",
		PlaceholderClassName:     "Strings",
	})

	assert.Equal(t, "<name> Strings", got)
}

func TestEmbeddedTemplateHasAllPlaceholders(t *testing.T) {
	for _, p := range []string{
		PlaceholderApplicationID,
		PlaceholderPackageName,
		PlaceholderClassName,
		PlaceholderFieldDeclarations,
		PlaceholderFieldAssignments,
	} {
		assert.Contains(t, classTemplate, p)
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "APP_NAME", fieldName("app_name"))
	assert.Equal(t, "WELCOMEMESSAGE", fieldName("welcomeMessage"))
	assert.Equal(t, "X1", fieldName("x1"))
}

func TestFieldCollisions(t *testing.T) {
	d := FieldCollisions(map[string]string{"title": "a", "Title": "b", "TITLE": "c", "body": "d"})

	require.Len(t, d.Warnings, 1)
	w := d.Warnings[0]
	assert.Equal(t, diagnostic.CodeCollision, w.Code)
	assert.Equal(t, "TITLE", w.Identifier)
	assert.Equal(t, "identifiers TITLE, Title, title all map to field TITLE", w.Message)

	assert.Empty(t, FieldCollisions(map[string]string{"title": "a", "body": "b"}).Warnings)
}

func TestGenerator_Render_CollidingFieldsStillRendered(t *testing.T) {
	unit, err := NewGenerator(DefaultGeneratorConfig()).Render(map[string]string{"title": "a", "Title": "b"}, testConfig())
	require.NoError(t, err)

	content := string(unit.Content)
	assert.Equal(t, 2, strings.Count(content, "public final String TITLE;"))
	assert.Contains(t, content, "R.string.title")
	assert.Contains(t, content, "R.string.Title")
}
