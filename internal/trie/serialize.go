package trie

import (
	"fmt"

	"github.com/zjosua/bdicwriter/internal/utils"
	"github.com/zjosua/bdicwriter/internal/writer"
)

// Identifier-byte bit layout, ported from the BDIC format's own constants
// (BDictConst in the original writer). The bits reserved for multi-affix
// leaves are not named here and are never set — this writer always emits
// affix index zero. lookup32BitBit is named but never set, since Lookup32
// nodes are rejected before any bytes are written.
const (
	leafAdditionalBit = 0x40

	listTypeBase  = 0xE0
	list16BitBit  = 0x10
	listCountMask = 0x0F

	lookupTypeBase = 0xC0
	lookup32BitBit = 0x02
	lookup0thBit   = 0x01
)

// Serialize appends node's bytes (and, recursively, its children's) to buf.
// Child pointers are written by reserving a zero-filled window and patching
// it once the child's position is known. For Lookup16 nodes they are
// relative to the offset buf.Len() held just before this call (the start
// of node's own bytes); for List8/List16 nodes they are relative to the
// start of the children region that follows the node's table. Returns UnsupportedTrieSize if node or any descendant planned
// to Lookup32: the format's offset range tops out at 16 bits, and writing
// one out requires an absolute base this in-memory buffer does not have.
func Serialize(node *Node, buf *writer.Buffer) error {
	switch node.Storage {
	case Leaf, LeafMore:
		serializeLeaf(node, buf)
		return nil
	case List8, List16:
		return serializeList(node, buf)
	case Lookup16:
		return serializeLookup(node, buf)
	case Lookup32:
		return utils.NewError(utils.UnsupportedTrieSize,
			fmt.Sprintf("node with %d children requires a 32-bit lookup table, which this writer cannot emit", len(node.Children)))
	default:
		return utils.NewError(utils.UnsupportedTrieSize, "node has no planned storage; call Plan before Serialize")
	}
}

func serializeLeaf(node *Node, buf *writer.Buffer) {
	const firstAffix = 0 // this writer never produces affix indices

	idByte := byte((firstAffix >> 8) & 0x1F)
	if node.Storage == LeafMore {
		idByte |= leafAdditionalBit
	}
	buf.WriteByte(idByte)
	buf.WriteByte(byte(firstAffix & 0xFF))

	if node.Storage == LeafMore {
		for _, c := range node.LeafAddition {
			buf.WriteByte(c)
		}
		buf.WriteByte(0x00)
	}
}

func serializeList(node *Node, buf *writer.Buffer) error {
	is8Bit := node.Storage == List8
	idByte := byte(listTypeBase)
	if !is8Bit {
		idByte |= list16BitBit
	}
	idByte |= byte(len(node.Children)) & listCountMask
	buf.WriteByte(idByte)

	bytesPerEntry := 2
	if !is8Bit {
		bytesPerEntry = 3
	}
	tableBegin := buf.Reserve(len(node.Children) * bytesPerEntry)
	childrenBegin := buf.Len()

	for i, child := range node.Children {
		slot := tableBegin + i*bytesPerEntry
		buf.PatchAt(slot, []byte{child.Addition})

		offset := buf.Len() - childrenBegin
		if is8Bit {
			buf.PatchAt(slot+1, []byte{byte(offset)})
		} else {
			buf.PatchUint16LE(slot+1, uint16(offset))
		}

		if err := Serialize(child, buf); err != nil {
			return err
		}
	}
	return nil
}

func serializeLookup(node *Node, buf *writer.Buffer) error {
	strategy := computeLookupStrategy(node.Children)

	idByte := byte(lookupTypeBase)
	if strategy.has0th {
		idByte |= lookup0thBit
	}
	beginOffset := buf.Len()
	buf.WriteByte(idByte)
	buf.WriteByte(strategy.firstItem)
	buf.WriteByte(byte(strategy.listSize))

	const bytesPerEntry = 2 // Lookup32 is rejected before this point

	zerothOffset := buf.Len()
	if strategy.has0th {
		buf.Reserve(bytesPerEntry)
	}
	tableBegin := buf.Reserve(strategy.listSize * bytesPerEntry)

	for i, child := range node.Children {
		var slot int
		if i == 0 && strategy.has0th {
			slot = zerothOffset
		} else {
			index := int(child.Addition) - int(strategy.firstItem)
			slot = tableBegin + index*bytesPerEntry
		}

		offset := buf.Len() - beginOffset
		buf.PatchUint16LE(slot, uint16(offset))

		if err := Serialize(child, buf); err != nil {
			return err
		}
	}
	return nil
}
