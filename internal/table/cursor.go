package table

import "github.com/felipebalbi/simpledb/internal/node"

// Cursor is an ephemeral position over a leaf: (table, page, cell, end).
// It is valid only between the operation that produced it and the next
// structural mutation of its page.
type Cursor struct {
	table   *Table
	pageNum uint32
	cellNum uint32
	end     bool
}

// Start returns a cursor at the leftmost leaf's first cell.
func (t *Table) Start() *Cursor {
	c, err := t.Find(0)
	if err != nil {
		// Find never returns an error on a well-formed tree; a fresh
		// root leaf always satisfies table_find(0).
		panic(err)
	}
	return c
}

// Value borrows the row image at the cursor's current cell.
func (c *Cursor) Value() []byte {
	page := c.table.pager.GetPage(c.pageNum)
	return node.LeafValue(page, c.cellNum)
}

// End reports whether the cursor has advanced past the last row.
func (c *Cursor) End() bool { return c.end }

// Key returns the key at the cursor's current cell. Valid only if !End().
func (c *Cursor) Key() uint32 {
	page := c.table.pager.GetPage(c.pageNum)
	return node.LeafKey(page, c.cellNum)
}

// Advance moves the cursor to the next cell in key order, following the
// leaf chain via next_leaf_page_num when the current leaf is exhausted.
func (c *Cursor) Advance() {
	page := c.table.pager.GetPage(c.pageNum)
	c.cellNum++

	if c.cellNum < node.LeafNumCells(page) {
		return
	}

	nextLeaf := node.LeafNextLeaf(page)
	if nextLeaf == 0 {
		c.end = true
		return
	}
	c.pageNum = nextLeaf
	c.cellNum = 0
}
