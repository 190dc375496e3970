package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/felipebalbi/simpledb/internal/node"
)

// PrintTree writes the recursive tree dump described in spec §6 to w.
func (t *Table) PrintTree(w io.Writer) {
	t.printNode(w, rootPageNum, 0)
}

func (t *Table) printNode(w io.Writer, pageNum uint32, level int) {
	page := t.pager.GetPage(pageNum)
	indent := strings.Repeat(" ", level)

	if node.NodeType(page) == node.TypeLeaf {
		numCells := node.LeafNumCells(page)
		fmt.Fprintf(w, "%s- leaf (size %d)\n", indent, numCells)
		for i := uint32(0); i < numCells; i++ {
			fmt.Fprintf(w, "%s - %d\n", indent, node.LeafKey(page, i))
		}
		return
	}

	numKeys := node.InternalNumKeys(page)
	fmt.Fprintf(w, "%s- internal (size %d)\n", indent, numKeys)
	for i := uint32(0); i < numKeys; i++ {
		t.printNode(w, node.InternalChild(page, i), level+1)
		fmt.Fprintf(w, "%s - key %d\n", indent, node.InternalKey(page, i))
	}
	t.printNode(w, node.InternalRightChild(page), level+1)
}

// PrintConstants writes the constants block described in spec §6 to w.
func PrintConstants(w io.Writer) {
	fmt.Fprintf(w, "%25s: %5d\n", "ROW_SIZE", node.LeafValueSize)
	fmt.Fprintf(w, "%25s: %5d\n", "COMMON_NODE_HEADER_SIZE", node.CommonHeaderSize)
	fmt.Fprintf(w, "%25s: %5d\n", "LEAF_NODE_HEADER_SIZE", node.LeafHeaderSize)
	fmt.Fprintf(w, "%25s: %5d\n", "LEAF_NODE_CELL_SIZE", node.LeafCellSize)
	fmt.Fprintf(w, "%25s: %5d\n", "LEAF_NODE_SPACE_FOR_CELLS", node.LeafSpaceForCells)
	fmt.Fprintf(w, "%25s: %5d\n", "LEAF_NODE_MAX_CELLS", node.LeafMaxCells)
}
