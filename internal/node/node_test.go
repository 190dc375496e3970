package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipebalbi/simpledb/internal/node"
)

func TestCommonHeaderAccessors(t *testing.T) {
	page := make([]byte, node.PageSize)

	node.SetNodeType(page, node.TypeInternal)
	assert.Equal(t, node.TypeInternal, node.NodeType(page))

	node.SetIsRoot(page, true)
	assert.True(t, node.IsRoot(page))
	node.SetIsRoot(page, false)
	assert.False(t, node.IsRoot(page))

	node.SetParentPageNum(page, 7)
	assert.Equal(t, uint32(7), node.ParentPageNum(page))
}

func TestLeafCellAccessors(t *testing.T) {
	page := make([]byte, node.PageSize)
	node.InitializeLeaf(page)

	require.Equal(t, uint32(0), node.LeafNumCells(page))
	require.Equal(t, node.TypeLeaf, node.NodeType(page))
	require.False(t, node.IsRoot(page))

	node.SetLeafNumCells(page, 2)
	node.SetLeafKey(page, 0, 10)
	node.SetLeafKey(page, 1, 20)
	copy(node.LeafValue(page, 0), []byte("row-zero"))
	copy(node.LeafValue(page, 1), []byte("row-one"))

	assert.Equal(t, uint32(10), node.LeafKey(page, 0))
	assert.Equal(t, uint32(20), node.LeafKey(page, 1))
	assert.Equal(t, uint32(20), node.NodeMaxKey(page))
	assert.Contains(t, string(node.LeafValue(page, 0)), "row-zero")

	node.SetLeafNextLeaf(page, 3)
	assert.Equal(t, uint32(3), node.LeafNextLeaf(page))
}

func TestInternalCellAccessorsAndFindChild(t *testing.T) {
	page := make([]byte, node.PageSize)
	node.InitializeInternal(page)

	node.SetInternalNumKeys(page, 3)
	node.SetInternalChild(page, 0, 1)
	node.SetInternalKey(page, 0, 10)
	node.SetInternalChild(page, 1, 2)
	node.SetInternalKey(page, 1, 20)
	node.SetInternalChild(page, 2, 3)
	node.SetInternalKey(page, 2, 30)
	node.SetInternalRightChild(page, 4)

	assert.Equal(t, uint32(30), node.NodeMaxKey(page))
	assert.Equal(t, uint32(1), node.InternalChildAt(page, 0))
	assert.Equal(t, uint32(4), node.InternalChildAt(page, 3))

	assert.Equal(t, uint32(0), node.InternalFindChild(page, 5))
	assert.Equal(t, uint32(1), node.InternalFindChild(page, 11))
	assert.Equal(t, uint32(3), node.InternalFindChild(page, 31))
}

func TestLeafMaxCellsAndSplitCounts(t *testing.T) {
	assert.Equal(t, uint32(293), uint32(node.LeafValueSize))
	assert.Equal(t, node.LeafHeaderSize+node.LeafMaxCells*node.LeafCellSize <= node.PageSize, true)
	assert.Equal(t, node.LeafMaxCells+1, node.LeafLeftSplitCount+node.LeafRightSplitCount)
}
