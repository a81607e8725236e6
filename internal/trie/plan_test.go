package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_LeafNoSuffix(t *testing.T) {
	n := &Node{}
	size := Plan(n)
	assert.Equal(t, Leaf, n.Storage)
	assert.Equal(t, 2, size)
}

func TestPlan_LeafMoreWithSuffix(t *testing.T) {
	n := &Node{LeafAddition: []byte("ab")}
	size := Plan(n)
	assert.Equal(t, LeafMore, n.Storage)
	assert.Equal(t, 3+2, size)
}

func TestPlan_List8ForSmallBranching(t *testing.T) {
	n := &Node{Children: []*Node{{Addition: 'a'}, {Addition: 'b'}}}
	size := Plan(n)
	assert.Equal(t, List8, n.Storage)
	// header(1) + 2*2(table) + 2*2(leaf children)
	assert.Equal(t, 1+4+4, size)
}

func TestPlan_List16WhenChildSizeExceedsByte(t *testing.T) {
	// Force child size above 0xFF with few children by giving each a long
	// leaf addition.
	longSuffix := make([]byte, 200)
	n := &Node{Children: []*Node{
		{Addition: 'a', LeafAddition: longSuffix},
		{Addition: 'b', LeafAddition: longSuffix},
	}}
	size := Plan(n)
	assert.Equal(t, List16, n.Storage)
	childSize := 2 * (3 + 200)
	assert.Equal(t, 1+2*3+childSize, size)
}

func TestPlan_Lookup16ForWideBranching(t *testing.T) {
	n := &Node{}
	for i := 0; i < 20; i++ {
		n.Children = append(n.Children, &Node{Addition: byte('a' + i)})
	}
	size := Plan(n)
	require.Equal(t, Lookup16, n.Storage)
	childSize := 20 * 2
	listSize := 20
	assert.Equal(t, 2+listSize*2+childSize, size)
}

func TestPlan_Lookup16WithZerothChild(t *testing.T) {
	n := &Node{Children: []*Node{{Addition: 0x00}}}
	for i := 0; i < 20; i++ {
		n.Children = append(n.Children, &Node{Addition: byte('a' + i)})
	}
	size := Plan(n)
	require.Equal(t, Lookup16, n.Storage)
	childSize := 21 * 2
	listSize := 20
	assert.Equal(t, 2+2+listSize*2+childSize, size)
}

func TestPlan_Lookup32ForHugeBranching(t *testing.T) {
	// Build a node whose immediate children are themselves sized large
	// enough to push the Lookup16 computation past 0xFFFF.
	const b = 130
	leafParent := func() *Node {
		n := &Node{}
		for i := 0; i < b; i++ {
			n.Children = append(n.Children, &Node{Addition: byte(i % 256)})
		}
		return n
	}

	top := &Node{}
	for i := 0; i < b; i++ {
		child := leafParent()
		child.Addition = byte(i % 256)
		top.Children = append(top.Children, child)
	}

	Plan(top)
	require.Equal(t, Lookup32, top.Storage)
}

func TestComputeLookupStrategy_Empty(t *testing.T) {
	s := computeLookupStrategy(nil)
	assert.False(t, s.has0th)
	assert.Equal(t, 0, s.listSize)
}

func TestComputeLookupStrategy_OnlyZeroth(t *testing.T) {
	s := computeLookupStrategy([]*Node{{Addition: 0x00}})
	assert.True(t, s.has0th)
	assert.Equal(t, 0, s.listSize)
}

func TestComputeLookupStrategy_SpanAcrossGap(t *testing.T) {
	s := computeLookupStrategy([]*Node{{Addition: 'a'}, {Addition: 'z'}})
	assert.False(t, s.has0th)
	assert.Equal(t, byte('a'), s.firstItem)
	assert.Equal(t, int('z'-'a')+1, s.listSize)
}
