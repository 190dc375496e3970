package node

import "encoding/binary"

// InitializeInternal resets page to an empty, non-root internal node.
func InitializeInternal(page []byte) {
	SetNodeType(page, TypeInternal)
	SetIsRoot(page, false)
	SetInternalNumKeys(page, 0)
	SetInternalRightChild(page, 0)
}

func InternalNumKeys(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[InternalNumKeysOffset : InternalNumKeysOffset+InternalNumKeysSize])
}

func SetInternalNumKeys(page []byte, n uint32) {
	binary.LittleEndian.PutUint32(page[InternalNumKeysOffset:InternalNumKeysOffset+InternalNumKeysSize], n)
}

func InternalRightChild(page []byte) uint32 {
	return binary.LittleEndian.Uint32(page[InternalRightChildOffset : InternalRightChildOffset+InternalRightChildSize])
}

func SetInternalRightChild(page []byte, pageNum uint32) {
	binary.LittleEndian.PutUint32(page[InternalRightChildOffset:InternalRightChildOffset+InternalRightChildSize], pageNum)
}

func internalCellOffset(i uint32) uint32 {
	return InternalHeaderSize + i*InternalCellSize
}

func InternalChild(page []byte, i uint32) uint32 {
	off := internalCellOffset(i)
	return binary.LittleEndian.Uint32(page[off : off+InternalChildSize])
}

func SetInternalChild(page []byte, i uint32, childPageNum uint32) {
	off := internalCellOffset(i)
	binary.LittleEndian.PutUint32(page[off:off+InternalChildSize], childPageNum)
}

func InternalKey(page []byte, i uint32) uint32 {
	off := internalCellOffset(i) + InternalChildSize
	return binary.LittleEndian.Uint32(page[off : off+InternalKeySize])
}

func SetInternalKey(page []byte, i uint32, key uint32) {
	off := internalCellOffset(i) + InternalChildSize
	binary.LittleEndian.PutUint32(page[off:off+InternalKeySize], key)
}

// InternalChildAt returns the child page for the given child index, where
// childNum == num_keys addresses the right child.
func InternalChildAt(page []byte, childNum uint32) uint32 {
	numKeys := InternalNumKeys(page)
	if childNum == numKeys {
		return InternalRightChild(page)
	}
	return InternalChild(page, childNum)
}

// InternalFindChild returns the smallest index i such that key <= key_i, or
// num_keys if key exceeds every key (directing the caller to the right child).
func InternalFindChild(page []byte, key uint32) uint32 {
	numKeys := InternalNumKeys(page)
	lo, hi := uint32(0), numKeys
	for lo < hi {
		mid := (lo + hi) / 2
		if InternalKey(page, mid) >= key {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
