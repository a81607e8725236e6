// Package trie builds, plans, and serializes the compressed byte-trie at
// the heart of a BDIC file: one edge per byte, ambiguity resolved by a
// storage-variant choice made for each node independently.
//
// Node uses a post-order, size-then-write two-pass structure: sizes are
// computed bottom-up (see Plan), then the tree is serialized top-down with
// offset fixups into a shared buffer (see Serialize), with per-node
// back-patched parent-relative child offsets.
package trie

import (
	"bytes"
	"sort"
)

// Node is one edge+vertex of the trie. Addition is the one-byte edge label
// from the node's parent (0x00 for the root, and for a "zeroth child" that
// terminates a word exactly at its parent's depth). Children are always
// kept sorted ascending by Addition. LeafAddition is the tail of a word
// that a terminal node represents beyond the edge into it. Storage is set
// by Plan (see plan.go) and consumed by Serialize (see serialize.go).
type Node struct {
	Addition     byte
	Children     []*Node
	LeafAddition []byte
	Storage      StorageKind
}

// Build constructs the root of a trie over words. words need not be sorted
// or deduplicated; Build sorts a copy byte-lexicographically and leaves
// the caller's slice untouched. An empty word set produces a single
// childless, leaf-addition-less root (a bare Leaf once planned).
func Build(words [][]byte) *Node {
	sorted := make([][]byte, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	root := &Node{}
	if len(sorted) == 0 {
		return root
	}
	buildNode(root, sorted, 0, len(sorted), 0)
	return root
}

// buildNode fills in node for the word range [begin, end) at depth, and
// returns the index of the next word not yet consumed by this subtree.
//
// Termination rules, applied in order:
//  1. len(words[begin]) < depth: this node is a bare word terminator
//     (matches a duplicate or a word that ended exactly one edge above).
//  2. Exactly one word matches this edge: it's a leaf; LeafAddition is
//     whatever remains of that word beyond depth.
//  3. Otherwise: split the range into contiguous runs sharing the same
//     byte at position depth, and recurse once per run at depth+1.
func buildNode(node *Node, words [][]byte, begin, end, depth int) int {
	beginWord := words[begin]

	if len(beginWord) < depth {
		node.Addition = 0x00
		return begin + 1
	}

	var matchCount int
	if depth == 0 {
		matchCount = end - begin
		node.Addition = 0x00
	} else {
		label := beginWord[depth-1]
		node.Addition = label
		matchCount = 0
		for begin+matchCount < end && words[begin+matchCount][depth-1] == label {
			matchCount++
		}
	}

	if matchCount == 1 {
		node.LeafAddition = beginWord[depth:]
		return begin + 1
	}

	i := begin
	for i < begin+matchCount {
		child := &Node{}
		i = buildNode(child, words, i, begin+matchCount, depth+1)
		node.Children = append(node.Children, child)
	}
	return begin + matchCount
}
