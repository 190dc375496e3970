// Package node is the binary codec for a 4096-byte page: pure offset
// arithmetic into a page buffer, no allocation and no I/O.
package node

import (
	"encoding/binary"

	"github.com/felipebalbi/simpledb/internal/row"
)

// PageSize is the fixed size of every on-disk page.
const PageSize = 4096

type Type uint8

const (
	TypeInternal Type = 0
	TypeLeaf     Type = 1
)

// Common node header (6 bytes): type, is_root, parent_page_num.
const (
	TypeOffset          = 0
	TypeSize            = 1
	IsRootOffset        = TypeOffset + TypeSize
	IsRootSize          = 1
	ParentPointerOffset = IsRootOffset + IsRootSize
	ParentPointerSize   = 4
	CommonHeaderSize    = TypeSize + IsRootSize + ParentPointerSize
)

// Leaf node header (+8 bytes, total 14): num_cells, next_leaf_page_num.
const (
	LeafNumCellsOffset = CommonHeaderSize
	LeafNumCellsSize   = 4
	LeafNextLeafOffset = LeafNumCellsOffset + LeafNumCellsSize
	LeafNextLeafSize   = 4
	LeafHeaderSize     = CommonHeaderSize + LeafNumCellsSize + LeafNextLeafSize
)

// Leaf node body: key (4 bytes) + row image.
const (
	LeafKeySize       = 4
	LeafValueSize     = row.Size
	LeafCellSize      = LeafKeySize + LeafValueSize
	LeafSpaceForCells = PageSize - LeafHeaderSize
	LeafMaxCells      = LeafSpaceForCells / LeafCellSize

	LeafRightSplitCount = (LeafMaxCells + 1) / 2
	LeafLeftSplitCount  = (LeafMaxCells + 1) - LeafRightSplitCount
)

// Internal node header (+8 bytes, total 14): num_keys, right_child_page_num.
const (
	InternalNumKeysOffset    = CommonHeaderSize
	InternalNumKeysSize      = 4
	InternalRightChildOffset = InternalNumKeysOffset + InternalNumKeysSize
	InternalRightChildSize   = 4
	InternalHeaderSize       = CommonHeaderSize + InternalNumKeysSize + InternalRightChildSize
)

// Internal node body: child_page (4 bytes) + key (4 bytes).
const (
	InternalChildSize     = 4
	InternalKeySize       = 4
	InternalCellSize      = InternalChildSize + InternalKeySize
	InternalSpaceForCells = PageSize - InternalHeaderSize
	InternalMaxCells      = InternalSpaceForCells / InternalCellSize
)

// --- common header accessors ---

func NodeType(page []byte) Type { return Type(page[TypeOffset]) }

func SetNodeType(page []byte, t Type) { page[TypeOffset] = byte(t) }

func IsRoot(page []byte) bool { return page[IsRootOffset] != 0 }

func SetIsRoot(page []byte, v bool) {
	if v {
		page[IsRootOffset] = 1
	} else {
		page[IsRootOffset] = 0
	}
}

func ParentPageNum(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[ParentPointerOffset : ParentPointerOffset+ParentPointerSize])
}

func SetParentPageNum(page []byte, pageNum uint32) {
	binary.LittleEndian.PutUint32(page[ParentPointerOffset:ParentPointerOffset+ParentPointerSize], pageNum)
}

// NodeMaxKey returns the key of a leaf's last cell, or the key of an
// internal node's last keyed cell (index num_keys-1); for an internal node
// the keys under the right child are not consulted. Only valid on a
// non-empty node.
func NodeMaxKey(page []byte) uint32 {
	if NodeType(page) == TypeLeaf {
		return LeafKey(page, LeafNumCells(page)-1)
	}
	return InternalKey(page, InternalNumKeys(page)-1)
}
