// Package bdicwriter builds Chromium/QtWebEngine BDIC binary dictionary
// files from a word list and an optional Hunspell-derived affix text.
//
// A BDIC file is a 32-byte header (magic, version, section offsets, an MD5
// digest of everything after the header) followed by an affix block and a
// compressed trie of the dictionary's words. Build performs the whole
// assembly in one synchronous, in-memory call; see Build for details.
package bdicwriter

const (
	magic = "BDic"

	// formatVersion is the only BDIC version this writer emits.
	formatVersion = 2

	// headerSize is the fixed size of the leading BDIC header.
	headerSize = 32

	// affStart is always headerSize: the affix block immediately follows
	// the header, with no padding.
	affStart = headerSize

	// maxWordLen is the longest word this writer accepts. The trie
	// builder's recursion depth is bounded by the word length; 127 bytes
	// comfortably covers every real dictionary entry and matches the
	// reference writer's own limit.
	maxWordLen = 127
)

// Header holds the fields of the fixed 32-byte structure written at the
// start of every BDIC file, apart from the 4-byte magic. Build returns raw
// bytes only; nothing in this package decodes a file into a Header.
type Header struct {
	Version  uint32
	AffStart uint32
	DicStart uint32
	Digest   [16]byte
}
