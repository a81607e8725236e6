package aff

import (
	"encoding/binary"
	"strconv"

	"github.com/zjosua/bdicwriter/internal/writer"
)

const headerSize = 16

// writeStringListNullTerm appends each string null-terminated, substituting
// a single space for an empty string so it cannot be confused with the
// double-null list terminator, then appends one final null to close the list.
func writeStringListNullTerm(buf *writer.Buffer, strs []string) {
	for _, s := range strs {
		if s == "" {
			buf.WriteByte(' ')
		} else {
			buf.Write([]byte(s))
		}
		buf.WriteByte(0x00)
	}
	buf.WriteByte(0x00)
}

func writeReplacements(buf *writer.Buffer, reps [][2]string) {
	for _, r := range reps {
		buf.Write([]byte(r[0]))
		buf.WriteByte(0x00)
		buf.Write([]byte(r[1]))
		buf.WriteByte(0x00)
	}
	buf.WriteByte(0x00)
}

// Serialize appends a's header and string tables to buf. The four offsets
// written into the header are absolute positions within buf — the same
// convention the BDIC header's own dic_start field uses — not positions
// relative to the affix header itself.
func Serialize(a *Aff, buf *writer.Buffer) {
	headerOffset := buf.Len()
	buf.Reserve(headerSize)

	buf.WriteByte('\n')
	buf.Write([]byte(a.IntroComment))
	buf.WriteByte('\n')

	affixGroupOffset := buf.Len()
	buf.Write([]byte("AF " + strconv.Itoa(len(a.affixGroups))))
	buf.WriteByte(0x00)
	writeStringListNullTerm(buf, a.affixGroups)

	affixRuleOffset := buf.Len()
	writeStringListNullTerm(buf, a.AffixRules)

	repOffset := buf.Len()
	writeReplacements(buf, a.Replacements)

	otherOffset := buf.Len()
	writeStringListNullTerm(buf, a.OtherCommands)

	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(affixGroupOffset))
	buf.PatchAt(headerOffset, tmp[:])
	binary.LittleEndian.PutUint32(tmp[:], uint32(affixRuleOffset))
	buf.PatchAt(headerOffset+4, tmp[:])
	binary.LittleEndian.PutUint32(tmp[:], uint32(repOffset))
	buf.PatchAt(headerOffset+8, tmp[:])
	binary.LittleEndian.PutUint32(tmp[:], uint32(otherOffset))
	buf.PatchAt(headerOffset+12, tmp[:])
}
