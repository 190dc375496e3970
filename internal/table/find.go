package table

import (
	"sort"

	"github.com/felipebalbi/simpledb/internal/node"
)

// Find descends from the root to the leaf that would contain key and
// returns a cursor whose cell_num is the index of the key if present, else
// the index at which it would be inserted to keep the leaf sorted.
func (t *Table) Find(key uint32) (*Cursor, error) {
	pageNum := uint32(rootPageNum)
	page := t.pager.GetPage(pageNum)

	for node.NodeType(page) == node.TypeInternal {
		childIdx := node.InternalFindChild(page, key)
		pageNum = node.InternalChildAt(page, childIdx)
		page = t.pager.GetPage(pageNum)
	}

	cellNum := leafFind(page, key)
	return &Cursor{
		table:   t,
		pageNum: pageNum,
		cellNum: cellNum,
		end:     node.LeafNumCells(page) == 0,
	}, nil
}

// leafFind binary-searches a leaf for key, returning the matching cell
// index or the successor slot where key would be inserted.
func leafFind(page []byte, key uint32) uint32 {
	numCells := node.LeafNumCells(page)
	idx := sort.Search(int(numCells), func(i int) bool {
		return node.LeafKey(page, uint32(i)) >= key
	})
	return uint32(idx)
}
