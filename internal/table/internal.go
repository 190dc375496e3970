package table

import (
	"github.com/felipebalbi/simpledb/internal/dbfatal"
	"github.com/felipebalbi/simpledb/internal/node"
)

// createNewRoot is called when the root splits. It copies the current
// root's contents to a freshly allocated left page, then reinitializes the
// root in place as an internal node pointing at the two children.
func (t *Table) createNewRoot(rightChildPage uint32) {
	root := t.pager.GetPage(rootPageNum)
	leftPageNum := t.pager.UnusedPageNum()
	leftPage := t.pager.GetPage(leftPageNum)

	copy(leftPage, root)
	node.SetIsRoot(leftPage, false)

	node.InitializeInternal(root)
	node.SetIsRoot(root, true)
	node.SetInternalNumKeys(root, 1)
	node.SetInternalChild(root, 0, leftPageNum)
	node.SetInternalKey(root, 0, node.NodeMaxKey(leftPage))
	node.SetInternalRightChild(root, rightChildPage)

	node.SetParentPageNum(leftPage, rootPageNum)
	rightChild := t.pager.GetPage(rightChildPage)
	node.SetParentPageNum(rightChild, rootPageNum)
}

// internalInsert splices a newly split child into parent. Internal-node
// splitting is intentionally unimplemented: overflow is a fatal error
// (spec §4.6, §4.9).
func (t *Table) internalInsert(parentPageNum, childPageNum uint32) {
	parent := t.pager.GetPage(parentPageNum)
	child := t.pager.GetPage(childPageNum)
	childMaxKey := node.NodeMaxKey(child)
	index := node.InternalFindChild(parent, childMaxKey)

	originalNumKeys := node.InternalNumKeys(parent)
	if originalNumKeys >= node.InternalMaxCells {
		dbfatal.Fatalw("internal node full, splitting an internal node is not implemented",
			"parent_page", parentPageNum, "num_keys", originalNumKeys)
	}
	node.SetInternalNumKeys(parent, originalNumKeys+1)

	rightChildPageNum := node.InternalRightChild(parent)
	rightChild := t.pager.GetPage(rightChildPageNum)

	if childMaxKey > node.NodeMaxKey(rightChild) {
		node.SetInternalChild(parent, originalNumKeys, rightChildPageNum)
		node.SetInternalKey(parent, originalNumKeys, node.NodeMaxKey(rightChild))
		node.SetInternalRightChild(parent, childPageNum)
	} else {
		for i := originalNumKeys; i > index; i-- {
			copy(internalCellSlice(parent, i), internalCellSlice(parent, i-1))
		}
		node.SetInternalChild(parent, index, childPageNum)
		node.SetInternalKey(parent, index, childMaxKey)
	}
}

// updateInternalKey rewrites the separator key for the child whose
// subtree-max used to be oldKey.
func (t *Table) updateInternalKey(parent []byte, oldKey, newKey uint32) {
	idx := node.InternalFindChild(parent, oldKey)
	node.SetInternalKey(parent, idx, newKey)
}

func internalCellSlice(page []byte, i uint32) []byte {
	const cellSize = node.InternalCellSize
	off := node.InternalHeaderSize + i*cellSize
	return page[off : off+cellSize]
}
