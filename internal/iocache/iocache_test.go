package iocache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnredlist/internal/iocache"
	"github.com/gnames/gnredlist/pkg/errcode"
	"github.com/gnames/gnredlist/pkg/redlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openCache(t *testing.T) *iocache.Cache {
	t.Helper()
	c, err := iocache.Open(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestStamp(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	s1, err := iocache.Stamp(path, "")
	require.NoError(t, err)
	s2, err := iocache.Stamp(path)
	require.NoError(t, err)
	assert.Equal(s1, s2)

	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n"), 0644))
	s3, err := iocache.Stamp(path)
	require.NoError(t, err)
	assert.NotEqual(s1, s3)

	_, err = iocache.Stamp(filepath.Join(dir, "none.csv"))
	assert.Error(err)
}

func TestRows(t *testing.T) {
	assert := assert.New(t)
	c := openCache(t)

	rows, ok, err := c.Rows("stamp1")
	require.NoError(t, err)
	assert.False(ok)
	assert.Nil(rows)

	in := make([]redlist.Row, 12)
	for i := range in {
		in[i] = redlist.Row{
			ID:      string(rune('a' + i)),
			Kingdom: "ANIMALIA",
			Genus:   "Balaena",
			Status:  "LC",
		}
	}
	require.NoError(t, c.StoreRows("stamp1", in))

	rows, ok, err = c.Rows("stamp1")
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(in, rows)

	// a new snapshot replaces the old one
	require.NoError(t, c.StoreRows("stamp2", in[:2]))
	_, ok, err = c.Rows("stamp1")
	require.NoError(t, err)
	assert.False(ok)
	rows, ok, err = c.Rows("stamp2")
	require.NoError(t, err)
	assert.True(ok)
	assert.Len(rows, 2)
}

func TestParsed(t *testing.T) {
	assert := assert.New(t)
	c := openCache(t)

	_, ok, err := c.Parsed("Balaena mysticetus")
	require.NoError(t, err)
	assert.False(ok)

	p := iocache.Parsed{Canonical: "Balaena mysticetus", Quality: 1}
	require.NoError(t, c.StoreParsed("Balaena mysticetus", p))
	res, ok, err := c.Parsed("Balaena mysticetus")
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(p, res)

	require.NoError(t, c.Clear())
	_, ok, err = c.Parsed("Balaena mysticetus")
	require.NoError(t, err)
	assert.False(ok)
}

func TestClosed(t *testing.T) {
	c := openCache(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, _, err := c.Rows("stamp")
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CacheOpenError, gnErr.Code)
}
