package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"resloader-generator/internal/diagnostic"
	"resloader-generator/internal/errors"
	"resloader-generator/internal/logger"
)

func TestMerge(t *testing.T) {
	existing := map[string]string{"greeting": "Hi", "title": "App"}
	next := map[string]string{"greeting": "Hello", "footer": "Bye"}

	merged := Merge(existing, next)

	assert.Equal(t, map[string]string{
		"greeting": "Hello",
		"title":    "App",
		"footer":   "Bye",
	}, merged)

	// Inputs are left untouched.
	assert.Equal(t, "Hi", existing["greeting"])
	assert.Len(t, existing, 2)
	assert.Len(t, next, 2)
}

func TestMerge_Nil(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Equal(t, map[string]string{"a": "1"}, Merge(nil, map[string]string{"a": "1"}))
	assert.Equal(t, map[string]string{"a": "1"}, Merge(map[string]string{"a": "1"}, nil))
}

func TestLoad_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeResource(t, dir, "first.xml", `<resources><string name="greeting">Hi</string><string name="only_first">1</string></resources>`)
	second := writeResource(t, dir, "second.xml", `<resources><string name="greeting">Hello</string></resources>`)

	set := Load([]string{first, second})

	assert.Equal(t, map[string]string{"greeting": "Hello", "only_first": "1"}, set.Entries, spew.Sdump(set.Entries))
	assert.Equal(t, []string{first, second}, set.Inputs)
	require.Len(t, set.Diagnostics.Infos, 1)
	assert.Equal(t, diagnostic.CodeOverride, set.Diagnostics.Infos[0].Code)
	assert.Equal(t, "greeting", set.Diagnostics.Infos[0].Identifier)

	reversed := Load([]string{second, first})
	assert.Equal(t, "Hi", reversed.Entries["greeting"])
}

func TestLoad_NewestIsOrderInsensitive(t *testing.T) {
	dir := t.TempDir()
	old := writeResource(t, dir, "old.xml", `<resources><string name="a">A</string></resources>`)
	recent := writeResource(t, dir, "recent.xml", `<resources><string name="b">B</string></resources>`)

	oldTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recentTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(old, oldTime, oldTime))
	require.NoError(t, os.Chtimes(recent, recentTime, recentTime))

	forward := Load([]string{old, recent})

	backward := Load([]string{recent, old})

	assert.True(t, forward.Newest.Equal(recentTime), "got %v", forward.Newest)
	assert.True(t, backward.Newest.Equal(recentTime), "got %v", backward.Newest)
}

func TestLoad_IsolatesFailingFiles(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	defer logger.Use(zap.New(core))()

	dir := t.TempDir()
	good := writeResource(t, dir, "good.xml", `<resources><string name="ok">OK</string></resources>`)
	broken := writeResource(t, dir, "broken.xml", `<resources><string name="bad">never closed`)
	missing := filepath.Join(dir, "missing.xml")
	later := writeResource(t, dir, "later.xml", `<resources><string name="late">Late</string></resources>`)

	brokenTime := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(broken, brokenTime, brokenTime))

	set := Load([]string{good, broken, missing, later})

	assert.Equal(t, map[string]string{"ok": "OK", "late": "Late"}, set.Entries)
	assert.True(t, set.Newest.Equal(brokenTime), "malformed files still count toward the newest timestamp")

	require.Len(t, set.Diagnostics.Errors, 2)
	assert.Equal(t, diagnostic.CodeMalformed, set.Diagnostics.Errors[0].Code)
	assert.Equal(t, broken, set.Diagnostics.Errors[0].File)
	assert.Equal(t, diagnostic.CodeUnreadable, set.Diagnostics.Errors[1].Code)
	assert.Equal(t, missing, set.Diagnostics.Errors[1].File)

	assert.Equal(t, 2, logs.FilterMessage("skipping resource file").Len())
}

func TestLoad_CollectsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeResource(t, dir, "good.xml", `<resources><string name="ok">OK</string></resources>`)
	broken := writeResource(t, dir, "broken.xml", `<resources>`)
	missing := filepath.Join(dir, "missing.xml")

	set := Load([]string{good, broken, missing})
	assert.Equal(t, map[string]string{"ok": "OK"}, set.Entries)

	err := set.Diagnostics.Error()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrParse), "kind of the first failure is kept")
	assert.Contains(t, err.Error(), broken)
	assert.Contains(t, err.Error(), missing)
}

func TestLoad_CleanInputsHaveNoError(t *testing.T) {
	path := writeResource(t, t.TempDir(), "strings.xml", `<resources><string name="ok">OK</string></resources>`)

	assert.NoError(t, Load([]string{path}).Diagnostics.Error())
}

func TestLoad_UnnamedEntriesWarn(t *testing.T) {
	path := writeResource(t, t.TempDir(), "strings.xml", "<resources>\n<string>lost</string>\n<string name=\"kept\">K</string>\n</resources>")

	set := Load([]string{path})

	assert.Equal(t, map[string]string{"kept": "K"}, set.Entries)
	require.Len(t, set.Diagnostics.Warnings, 1)
	assert.Equal(t, diagnostic.CodeMissingName, set.Diagnostics.Warnings[0].Code)
	assert.Contains(t, set.Diagnostics.Warnings[0].Message, "line 2")
}

func TestNewest(t *testing.T) {
	a := time.Unix(100, 0)
	b := time.Unix(200, 0)

	assert.Equal(t, b, Newest(a, b))
	assert.Equal(t, b, Newest(b, a))
	assert.Equal(t, a, Newest(time.Time{}, a))
}
