package yamlinc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsTagWithoutSigil(t *testing.T) {
	_, err := Register(DefaultClass, "include")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTag))
}

func TestRegisterEmptyTagUsesDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inner.yaml", "ok: true\n")

	r, err := Register(DefaultClass, "", WithBaseDir(dir), WithLogger(discardLogger()))
	require.NoError(t, err)
	require.NotNil(t, r)

	loader := NewLoader(DefaultClass)
	value, err := loader.Load([]byte("outer: !include inner.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"outer": map[string]any{"ok": true}}, value)
}

func TestRegisterBlankTagUsesDefault(t *testing.T) {
	r, err := Register(DefaultClass, "   ", WithLogger(discardLogger()))
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestRegisterCustomTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inner.yaml", "ok: true\n")

	_, err := Register(DefaultClass, "!load", WithBaseDir(dir), WithLogger(discardLogger()))
	require.NoError(t, err)

	loader := NewLoader(DefaultClass)
	value, err := loader.Load([]byte("outer: !load inner.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"outer": map[string]any{"ok": true}}, value)
}

func TestRegisterClassesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inner.yaml", "ok: true\n")

	_, err := Register(StrictClass, "!strictinc", WithBaseDir(dir), WithLogger(discardLogger()))
	require.NoError(t, err)

	// The strict binding resolves through a strict loader.
	loader := NewLoader(StrictClass)
	value, err := loader.Load([]byte("outer: !strictinc inner.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"outer": map[string]any{"ok": true}}, value)

	// A default-class loader never sees it; the tag stays an opaque scalar.
	loader = NewLoader(DefaultClass)
	value, err = loader.Load([]byte("outer: !strictinc inner.yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"outer": "inner.yaml"}, value)
}

func TestRegisterOptionsApplied(t *testing.T) {
	r, err := Register(DefaultClass, "!optinc",
		WithBaseDir("/etc/app"),
		WithEncoding("iso-8859-1"),
		WithLogger(discardLogger()),
	)
	require.NoError(t, err)
	assert.Equal(t, "/etc/app", r.BaseDir)
	assert.Equal(t, "iso-8859-1", r.Encoding)
}
