package cmudict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDict = `;;; # CMUdict sample
HELLO  HH AH0 L OW1
WORLD  W ER1 L D
READ  R IY1 D
READ(1)  R EH1 D

hunter HH AH1 N T ER0
`

func TestLoadText(t *testing.T) {
	d := New()
	require.NoError(t, d.LoadText(strings.NewReader(sampleDict)))

	assert.Equal(t, 4, d.Size())

	phonemes, ok := d.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, []string{"HH", "AH0", "L", "OW1"}, phonemes)

	// Parenthesized alternates are skipped; the first variant stays.
	phonemes, ok = d.Lookup("read")
	require.True(t, ok)
	assert.Equal(t, []string{"R", "IY1", "D"}, phonemes)

	_, ok = d.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupIsCaseNormalized(t *testing.T) {
	d := New()
	d.Add("Hello", []string{"HH", "AH0", "L", "OW1"})

	_, ok := d.Lookup("hello")
	assert.True(t, ok)
	_, ok = d.Lookup("Hello")
	assert.False(t, ok)
}

func TestAddFirstVariantWins(t *testing.T) {
	d := New()
	d.Add("read", []string{"R", "IY1", "D"})
	d.Add("read", []string{"R", "EH1", "D"})

	phonemes, _ := d.Lookup("read")
	assert.Equal(t, []string{"R", "IY1", "D"}, phonemes)
	assert.Equal(t, 1, d.Size())
}

func TestLoadFileText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.dict")
	require.NoError(t, os.WriteFile(path, []byte(sampleDict), 0644))

	d := New()
	require.NoError(t, d.LoadFile(path))
	assert.Equal(t, 4, d.Size())
}

func TestCompileRoundtrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "cmudict.dict")
	db := filepath.Join(dir, "cmudict.db")
	require.NoError(t, os.WriteFile(src, []byte(sampleDict), 0644))

	count, err := Compile(src, db)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	d := New()
	require.NoError(t, d.LoadFile(db))
	assert.Equal(t, 4, d.Size())

	phonemes, ok := d.Lookup("world")
	require.True(t, ok)
	assert.Equal(t, []string{"W", "ER1", "L", "D"}, phonemes)
}

func TestLoadFileMissing(t *testing.T) {
	d := New()
	assert.Error(t, d.LoadFile(filepath.Join(t.TempDir(), "nope.dict")))
	assert.Error(t, d.LoadFile(filepath.Join(t.TempDir(), "nope.db")))
}
