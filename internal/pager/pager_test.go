package pager_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipebalbi/simpledb/internal/pager"
)

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "test.db")
}

func TestOpenNewFileStartsEmpty(t *testing.T) {
	p, err := pager.Open(tempDBPath(t), 10)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), p.NumPages())
	assert.Equal(t, uint32(0), p.UnusedPageNum())
}

func TestGetPageAllocatesAndGrowsNumPages(t *testing.T) {
	p, err := pager.Open(tempDBPath(t), 10)
	require.NoError(t, err)

	page := p.GetPage(0)
	assert.Len(t, page, pager.PageSize)
	assert.Equal(t, uint32(1), p.NumPages())

	page[0] = 0xAB
	again := p.GetPage(0)
	assert.Equal(t, byte(0xAB), again[0])
}

func TestFlushAndReopenPersistsData(t *testing.T) {
	path := tempDBPath(t)

	p, err := pager.Open(path, 10)
	require.NoError(t, err)

	page := p.GetPage(0)
	copy(page, []byte("hello"))
	require.NoError(t, p.Close())

	p2, err := pager.Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), p2.NumPages())

	reloaded := p2.GetPage(0)
	assert.Equal(t, "hello", string(reloaded[:5]))
	require.NoError(t, p2.Close())
}

func TestUnusedPageNumIsAppendOnly(t *testing.T) {
	p, err := pager.Open(tempDBPath(t), 10)
	require.NoError(t, err)

	first := p.UnusedPageNum()
	p.GetPage(first)
	second := p.UnusedPageNum()
	assert.Equal(t, first+1, second)
}

func TestOpenDefaultsMaxPagesWhenZero(t *testing.T) {
	p, err := pager.Open(tempDBPath(t), 0)
	require.NoError(t, err)
	// Page DefaultMaxPages-1 must be addressable without a fatal bounds abort.
	assert.NotPanics(t, func() { p.GetPage(pager.DefaultMaxPages - 1) })
}

func TestOpenExistingEmptyFileIsFine(t *testing.T) {
	path := tempDBPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0600))

	p, err := pager.Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), p.NumPages())
}
