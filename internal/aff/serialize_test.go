package aff

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjosua/bdicwriter/internal/writer"
)

func TestSerialize_HeaderOffsetsAreAbsolute(t *testing.T) {
	a, err := Parse("# hi\nSET UTF-8\nAF 1\nAF X\n")
	require.NoError(t, err)

	buf := writer.New()
	// Simulate the BDIC header preceding this block so the offsets are
	// exercised at a non-zero base, matching real use from the root package.
	buf.Reserve(32)

	headerOffset := buf.Len()
	Serialize(a, buf)
	out := buf.Bytes()

	affixGroupOffset := binary.LittleEndian.Uint32(out[headerOffset : headerOffset+4])
	affixRuleOffset := binary.LittleEndian.Uint32(out[headerOffset+4 : headerOffset+8])
	repOffset := binary.LittleEndian.Uint32(out[headerOffset+8 : headerOffset+12])
	otherOffset := binary.LittleEndian.Uint32(out[headerOffset+12 : headerOffset+16])

	assert.Equal(t, byte('\n'), out[headerOffset+16])
	assert.True(t, int(affixGroupOffset) > headerOffset+16)
	assert.True(t, affixRuleOffset >= affixGroupOffset)
	assert.True(t, repOffset >= affixRuleOffset)
	assert.True(t, otherOffset >= repOffset)
	assert.Equal(t, []byte("AF 1"), out[affixGroupOffset:affixGroupOffset+4])
}

func TestSerialize_EmptyListsStillDoubleNullTerminate(t *testing.T) {
	a, err := Parse("SET UTF-8\n")
	require.NoError(t, err)

	buf := writer.New()
	Serialize(a, buf)
	out := buf.Bytes()

	affixGroupOffset := binary.LittleEndian.Uint32(out[0:4])
	affixRuleOffset := binary.LittleEndian.Uint32(out[4:8])

	// "AF 0\0" followed by the group list's own terminator (empty list: a
	// single extra 0x00) brings us to affix_rule_offset.
	listStart := int(affixGroupOffset) + len("AF 0") + 1
	assert.Equal(t, byte(0x00), out[listStart])
	assert.Equal(t, listStart+1, int(affixRuleOffset))
}

func TestSerialize_EmptyStringInListBecomesSpace(t *testing.T) {
	// An empty affix-group rule can't arise from Parse (stripComment trims
	// trailing whitespace before the "AF " prefix check ever sees it), but
	// the list serializer still has to handle it without colliding with the
	// list terminator, so exercise it directly on a hand-built Aff.
	a := New()
	a.affixGroups = []string{""}

	buf := writer.New()
	Serialize(a, buf)
	out := buf.Bytes()

	affixGroupOffset := binary.LittleEndian.Uint32(out[0:4])
	listStart := int(affixGroupOffset) + len("AF 1") + 1
	assert.Equal(t, byte(' '), out[listStart])
	assert.Equal(t, byte(0x00), out[listStart+1])
}

func TestSerialize_Replacements(t *testing.T) {
	a, err := Parse("REP 1\nREP a b\n")
	require.NoError(t, err)

	buf := writer.New()
	Serialize(a, buf)
	out := buf.Bytes()

	repOffset := binary.LittleEndian.Uint32(out[8:12])
	otherOffset := binary.LittleEndian.Uint32(out[12:16])
	want := []byte{'a', 0x00, 'b', 0x00, 0x00}
	assert.Equal(t, want, out[repOffset:otherOffset])
}
