// Package table ties the pager and node codec together into the B+-tree
// operations named in spec: find, leaf insert/split, root promotion,
// internal insert, and the cursor used to scan leaves in key order.
package table

import (
	"errors"

	"github.com/felipebalbi/simpledb/internal/node"
	"github.com/felipebalbi/simpledb/internal/pager"
)

// ErrDuplicateKey is returned by Insert when the key is already present.
// This is a user-input error: the core never aborts the process for it.
var ErrDuplicateKey = errors.New("duplicate key")

// rootPageNum is fixed at 0 for the lifetime of a table.
const rootPageNum = 0

// Table is a thin handle binding a Pager to a root page number.
type Table struct {
	pager *pager.Pager
}

// Open opens filename as a table, initializing page 0 as an empty root
// leaf if the file is new.
func Open(filename string, maxPages uint32) (*Table, error) {
	p, err := pager.Open(filename, maxPages)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: p}
	if p.NumPages() == 0 {
		root := p.GetPage(rootPageNum)
		node.InitializeLeaf(root)
		node.SetIsRoot(root, true)
	}
	return t, nil
}

// Close flushes every materialized page and closes the backing file.
func (t *Table) Close() error {
	return t.pager.Close()
}
