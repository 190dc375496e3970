package node

import "encoding/binary"

// InitializeLeaf resets page to an empty, non-root leaf node.
func InitializeLeaf(page []byte) {
	SetNodeType(page, TypeLeaf)
	SetIsRoot(page, false)
	SetLeafNumCells(page, 0)
	SetLeafNextLeaf(page, 0)
}

func LeafNumCells(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[LeafNumCellsOffset : LeafNumCellsOffset+LeafNumCellsSize])
}

func SetLeafNumCells(page []byte, n uint32) {
	binary.LittleEndian.PutUint32(page[LeafNumCellsOffset:LeafNumCellsOffset+LeafNumCellsSize], n)
}

// LeafNextLeaf returns the sibling leaf page number, or 0 if this is the
// rightmost leaf.
func LeafNextLeaf(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[LeafNextLeafOffset : LeafNextLeafOffset+LeafNextLeafSize])
}

func SetLeafNextLeaf(page []byte, pageNum uint32) {
	binary.LittleEndian.PutUint32(page[LeafNextLeafOffset:LeafNextLeafOffset+LeafNextLeafSize], pageNum)
}

func leafCellOffset(i uint32) uint32 {
	return LeafHeaderSize + i*LeafCellSize
}

// LeafCell returns the full key+value cell slice at index i.
func LeafCell(page []byte, i uint32) []byte {
	off := leafCellOffset(i)
	return page[off : off+LeafCellSize]
}

func LeafKey(page []byte, i uint32) uint32 {
	off := leafCellOffset(i)
	return binary.LittleEndian.Uint32(page[off : off+LeafKeySize])
}

func SetLeafKey(page []byte, i uint32, key uint32) {
	off := leafCellOffset(i)
	binary.LittleEndian.PutUint32(page[off:off+LeafKeySize], key)
}

// LeafValue returns the row-image slice for cell i.
func LeafValue(page []byte, i uint32) []byte {
	off := leafCellOffset(i) + LeafKeySize
	return page[off : off+LeafValueSize]
}
