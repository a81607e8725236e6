package bdicwriter

import (
	"crypto/md5" //nolint:gosec // G501: MD5 is the BDIC wire format's own digest, not used for security
	"strings"

	"github.com/zjosua/bdicwriter/internal/aff"
	"github.com/zjosua/bdicwriter/internal/trie"
	"github.com/zjosua/bdicwriter/internal/utils"
	"github.com/zjosua/bdicwriter/internal/writer"
)

// Result is the outcome of a successful Build: the complete BDIC file bytes
// plus any non-fatal warnings collected while parsing the affix text.
type Result struct {
	Bytes    []byte
	Warnings []string
}

// Build assembles a complete BDIC file from words and an optional affText.
//
// words must each be non-empty UTF-8 strings of at most 127 bytes. A word
// containing '/' is only accepted when affText is non-empty: the bare
// slash would otherwise be ambiguous with the Hunspell affix-flag
// separator a caller-supplied aff block might expect to find attached to
// dictionary entries. When affText is empty, a default aff block is
// generated from the characters actually used by words (see
// internal/aff.Default).
//
// Build is purely synchronous: the whole word list and the output buffer
// live in memory for the duration of one call, and a single call is
// self-contained. Callers wanting multiple independent files may call
// Build concurrently from separate goroutines.
func Build(words []string, affText string) (*Result, error) {
	if err := validateWords(words, affText); err != nil {
		return nil, err
	}

	var record *aff.Aff
	if affText == "" {
		generated := aff.Default(words)
		parsed, err := aff.Parse(generated)
		if err != nil {
			return nil, err
		}
		record = parsed
	} else {
		parsed, err := aff.Parse(affText)
		if err != nil {
			return nil, err
		}
		record = parsed
	}

	buf := writer.New()
	headerOffset := buf.Reserve(headerSize)

	aff.Serialize(record, buf)
	dicStart := buf.Len()

	// Repeated words are dropped so that duplicates have no effect on the
	// output.
	seen := make(map[string]bool, len(words))
	byteWords := make([][]byte, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		byteWords = append(byteWords, []byte(w))
	}
	root := trie.Build(byteWords)
	trie.Plan(root)
	if err := trie.Serialize(root, buf); err != nil {
		return nil, err
	}

	digest := md5.Sum(buf.Bytes()[headerOffset+headerSize:]) //nolint:gosec // G401: see import comment

	writeHeader(buf, headerOffset, uint32(dicStart), digest)

	return &Result{Bytes: buf.Bytes(), Warnings: record.Warnings}, nil
}

func writeHeader(buf *writer.Buffer, offset int, dicStart uint32, digest [16]byte) {
	buf.PatchAt(offset, []byte(magic))
	buf.PatchUint32LE(offset+4, formatVersion)
	buf.PatchUint32LE(offset+8, affStart)
	buf.PatchUint32LE(offset+12, dicStart)
	buf.PatchAt(offset+16, digest[:])
}

func validateWords(words []string, affText string) error {
	for _, w := range words {
		if w == "" {
			return utils.NewError(utils.InvalidWord, "word is empty")
		}
		if len(w) > maxWordLen {
			return utils.NewError(utils.InvalidWord, "word '"+w+"' exceeds the 127-byte limit")
		}
		if affText == "" && strings.Contains(w, "/") {
			return utils.NewError(utils.InvalidWord, "word '"+w+"' contains '/' but no aff text was supplied")
		}
	}
	return nil
}
