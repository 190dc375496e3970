package table

import (
	"fmt"

	"github.com/felipebalbi/simpledb/internal/node"
	"github.com/felipebalbi/simpledb/internal/row"
)

// Insert adds key/r into the tree, splitting leaves and promoting a new
// root as needed. Duplicate keys are rejected before any mutation.
func (t *Table) Insert(key uint32, r row.Row) error {
	cursor, err := t.Find(key)
	if err != nil {
		return err
	}

	page := t.pager.GetPage(cursor.pageNum)
	numCells := node.LeafNumCells(page)
	if cursor.cellNum < numCells && node.LeafKey(page, cursor.cellNum) == key {
		return ErrDuplicateKey
	}

	t.leafInsert(cursor, key, r)
	return nil
}

// leafInsert writes key/r at cursor's slot, splitting the leaf first if it
// is already full.
func (t *Table) leafInsert(cursor *Cursor, key uint32, r row.Row) {
	page := t.pager.GetPage(cursor.pageNum)
	numCells := node.LeafNumCells(page)

	if numCells >= node.LeafMaxCells {
		t.leafSplitAndInsert(cursor, key, r)
		return
	}

	if cursor.cellNum < numCells {
		for i := numCells; i > cursor.cellNum; i-- {
			copy(node.LeafCell(page, i), node.LeafCell(page, i-1))
		}
	}

	node.SetLeafNumCells(page, numCells+1)
	node.SetLeafKey(page, cursor.cellNum, key)
	if err := row.Serialize(r, node.LeafValue(page, cursor.cellNum)); err != nil {
		panic(fmt.Errorf("leafInsert: %w", err))
	}
}

// leafSplitAndInsert splits a full leaf in two, redistributing its cells
// plus the new one deterministically (LEAF_LEFT_SPLIT_COUNT into the old
// page, LEAF_RIGHT_SPLIT_COUNT into a freshly allocated sibling), then
// propagates the split upward via create_new_root or internal_insert.
func (t *Table) leafSplitAndInsert(cursor *Cursor, key uint32, r row.Row) {
	oldPage := t.pager.GetPage(cursor.pageNum)
	oldMax := node.NodeMaxKey(oldPage)

	newPageNum := t.pager.UnusedPageNum()
	newPage := t.pager.GetPage(newPageNum)
	node.InitializeLeaf(newPage)
	node.SetParentPageNum(newPage, node.ParentPageNum(oldPage))
	node.SetLeafNextLeaf(newPage, node.LeafNextLeaf(oldPage))
	node.SetLeafNextLeaf(oldPage, newPageNum)

	for i := int(node.LeafMaxCells); i >= 0; i-- {
		var dst []byte
		var dstIdx uint32
		if uint32(i) >= node.LeafLeftSplitCount {
			dst = newPage
			dstIdx = uint32(i) - node.LeafLeftSplitCount
		} else {
			dst = oldPage
			dstIdx = uint32(i)
		}

		switch {
		case uint32(i) == cursor.cellNum:
			node.SetLeafKey(dst, dstIdx, key)
			if err := row.Serialize(r, node.LeafValue(dst, dstIdx)); err != nil {
				panic(fmt.Errorf("leafSplitAndInsert: %w", err))
			}
		case uint32(i) > cursor.cellNum:
			copy(node.LeafCell(dst, dstIdx), node.LeafCell(oldPage, uint32(i)-1))
		default:
			copy(node.LeafCell(dst, dstIdx), node.LeafCell(oldPage, uint32(i)))
		}
	}

	node.SetLeafNumCells(oldPage, node.LeafLeftSplitCount)
	node.SetLeafNumCells(newPage, node.LeafRightSplitCount)

	if node.IsRoot(oldPage) {
		t.createNewRoot(newPageNum)
		return
	}

	parentPageNum := node.ParentPageNum(oldPage)
	parentPage := t.pager.GetPage(parentPageNum)
	newMaxOfOld := node.NodeMaxKey(oldPage)
	t.updateInternalKey(parentPage, oldMax, newMaxOfOld)
	t.internalInsert(parentPageNum, newPageNum)
}
