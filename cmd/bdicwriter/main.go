// Package main provides a command-line tool to build a BDIC binary
// dictionary file from a Hunspell-style word list.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zjosua/bdicwriter"
)

func main() {
	flag.Usage = func() {
		fmt.Println("Usage: bdicwriter [flags] <words.dic> <output.bdic>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	dicPath := args[0]
	outPath := args[1]

	//nolint:gosec // G304: user-provided path is the whole point of this CLI
	dicBytes, err := os.ReadFile(dicPath)
	if err != nil {
		log.Fatalf("failed to read word list: %v", err)
	}

	words := parseWords(string(dicBytes))

	var affText string
	affPath := strings.TrimSuffix(dicPath, filepath.Ext(dicPath)) + ".aff"
	if affBytes, err := os.ReadFile(affPath); err == nil { //nolint:gosec // G304: sibling of a user-provided path
		affText = string(affBytes)
	}

	result, err := bdicwriter.Build(words, affText)
	if err != nil {
		log.Fatalf("failed to build dictionary: %v", err)
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}

	//nolint:gosec // G306: dictionary files are not sensitive
	if err := os.WriteFile(outPath, result.Bytes, 0o644); err != nil {
		log.Fatalf("failed to write %s: %v", outPath, err)
	}

	fmt.Printf("wrote %d words to %s (%d bytes)\n", len(words), outPath, len(result.Bytes))
}

// parseWords splits a Hunspell .dic file's lines into words, dropping the
// leading word-count line when the first line is a bare integer.
func parseWords(dic string) []string {
	lines := strings.Split(dic, "\n")
	if len(lines) > 0 {
		if _, err := strconv.ParseUint(strings.TrimSpace(lines[0]), 10, 64); err == nil {
			lines = lines[1:]
		}
	}

	var words []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words
}
