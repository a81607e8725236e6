// Package aff parses the Hunspell-derived affix text that prefixes a BDIC
// file and builds the in-memory record the serializer in serialize.go turns
// into the on-disk affix block.
package aff

import (
	"strconv"
	"strings"

	"github.com/zjosua/bdicwriter/internal/utils"
)

// Aff is the parsed form of a Hunspell-style .aff file, restricted to the
// directives BDIC actually carries forward.
type Aff struct {
	IntroComment string
	Encoding     string

	affixGroups   []string
	affixGroupIdx map[string]int
	HasIndexedAffixes bool

	AffixRules   []string
	Replacements [][2]string
	OtherCommands []string

	Warnings []string
}

// New returns an empty Aff with its affix-group index initialised; Parse
// starts from one.
func New() *Aff {
	return &Aff{affixGroupIdx: make(map[string]int)}
}

// AffixGroups returns the affix-group rule strings in the order they were
// first assigned an index (index 1 is affixGroups[0], and so on).
func (a *Aff) AffixGroups() []string {
	return a.affixGroups
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i != -1 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if r == ' ' {
			if lastWasSpace {
				continue
			}
			lastWasSpace = true
		} else {
			lastWasSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// addAffixGroup appends rule as a new affix-group entry unconditionally and
// returns its 1-based index, even if an identical rule was already added.
// This is what the AF directive itself uses: each AF line names one more
// group, full stop, so two identical AF lines yield two distinct indices.
func (a *Aff) addAffixGroup(rule string) int {
	rule = strings.TrimSpace(rule)
	a.affixGroups = append(a.affixGroups, rule)
	idx := len(a.affixGroups)
	a.affixGroupIdx[rule] = idx
	return idx
}

// getOrAddAffixGroup returns the 1-based index for rule, allocating a new
// one only if this exact string has not been seen before. This is used
// when resolving an SFX/PFX rule's trailing slash group on demand, where
// re-using an existing group for a repeated flag string is the point.
func (a *Aff) getOrAddAffixGroup(rule string) int {
	rule = strings.TrimSpace(rule)
	if idx, ok := a.affixGroupIdx[rule]; ok {
		return idx
	}
	return a.addAffixGroup(rule)
}

// Parse reads aff text line by line into a fresh Aff from New and returns
// it. It returns a
// *utils.BuildError wrapping UnsupportedAffDirective for IGNORE and
// COMPLEXPREFIXES, and MalformedAffRule for an SFX/PFX rule whose trailing
// part has zero terms after a slash.
func Parse(text string) (*Aff, error) {
	a := New()
	gotCommand := false
	gotFirstAF := false
	gotFirstREP := false

	for _, line := range strings.Split(text, "\n") {
		if !gotCommand && len(line) > 0 && line[0] == '#' {
			a.IntroComment += line + "\n"
			continue
		}
		line = stripComment(line)
		if line == "" {
			continue
		}
		gotCommand = true

		switch {
		case strings.HasPrefix(line, "SET "):
			a.Encoding = strings.TrimSpace(line[4:])
		case strings.HasPrefix(line, "AF "):
			a.HasIndexedAffixes = true
			if gotFirstAF {
				a.addAffixGroup(line[3:])
			} else {
				gotFirstAF = true
			}
		case strings.HasPrefix(line, "SFX ") || strings.HasPrefix(line, "PFX "):
			if err := a.addAffix(line); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "REP "):
			if gotFirstREP {
				a.addReplacement(line[4:])
			} else {
				gotFirstREP = true
			}
		case strings.HasPrefix(line, "TRY ") || strings.HasPrefix(line, "MAP "):
			a.OtherCommands = append(a.OtherCommands, line)
		case strings.HasPrefix(line, "IGNORE "):
			return nil, utils.NewError(utils.UnsupportedAffDirective, "IGNORE command not supported")
		case strings.HasPrefix(line, "COMPLEXPREFIXES"):
			return nil, utils.NewError(utils.UnsupportedAffDirective, "COMPLEXPREFIXES command not supported")
		default:
			a.OtherCommands = append(a.OtherCommands, line)
		}
	}
	return a, nil
}

// addAffix normalizes an SFX/PFX rule, locates its third space-separated
// field, and resolves a trailing slash group against the affix-group table
// when affixes are not already indexed via AF.
func (a *Aff) addAffix(rule string) error {
	rule = collapseSpaces(strings.TrimSpace(rule))

	foundSpaces := 0
	token := ""
	for i := 0; i < len(rule); i++ {
		if rule[i] != ' ' {
			token += string(rule[i])
			continue
		}
		foundSpaces++
		if foundSpaces != 3 {
			token = ""
			continue
		}

		partStart := i
		if len(token) == 0 || (token[0] != 'Y' && token[0] != 'N') {
			partStart = i - len(token)
		}
		part := rule[partStart:]

		if strings.Contains(part, "-") {
			tokens := strings.Split(part, " ")
			for j := range tokens {
				tokens[j] = strings.TrimSpace(tokens[j])
			}
			if len(tokens) >= 5 {
				part = tokens[0] + "\x00 " + tokens[1] + "\x00/" + tokens[4] + "\x00 " + tokens[2] + "\x00"
			}
		}

		slashIdx := strings.IndexByte(part, '/')
		if slashIdx != -1 && !a.HasIndexedAffixes {
			beforeFlags := part[:slashIdx+1]
			afterSlashParts := strings.Split(part[slashIdx+1:], " ")
			for j := range afterSlashParts {
				afterSlashParts[j] = strings.TrimSpace(afterSlashParts[j])
			}
			if len(afterSlashParts) == 0 || (len(afterSlashParts) == 1 && afterSlashParts[0] == "") {
				return utils.NewError(utils.MalformedAffRule,
					"found 0 terms after slash in affix rule '"+part+"' but need at least 2")
			}
			if len(afterSlashParts) == 1 {
				a.Warnings = append(a.Warnings,
					"found 1 term after slash in affix rule '"+part+"', but expected at least 2; adding '.'")
				afterSlashParts = append(afterSlashParts, ".")
			}
			groupIdx := a.getOrAddAffixGroup(afterSlashParts[0])
			part = beforeFlags + "\x00" + strconv.Itoa(groupIdx) + " " + afterSlashParts[1] + "\x00"
		}

		rule = rule[:partStart] + part
		break
	}

	a.AffixRules = append(a.AffixRules, rule)
	return nil
}

// addReplacement splits a REP rule's body on its first space into a
// (from, to) pair, replacing underscores with spaces in both fields.
func (a *Aff) addReplacement(body string) {
	body = collapseSpaces(strings.TrimSpace(body))
	from, to, _ := strings.Cut(body, " ")
	from = strings.ReplaceAll(from, "_", " ")
	to = strings.ReplaceAll(to, "_", " ")
	a.Replacements = append(a.Replacements, [2]string{from, to})
}

// baseAlphabet is the fixed set of English letters and the apostrophe the
// default TRY alphabet always starts from.
const baseAlphabet = "esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ'"

// Default builds the affix text used when the caller supplies none: the
// fixed base alphabet extended, in the words' original order, with any
// character not already present, followed by the default ICONV lines.
func Default(words []string) string {
	seen := make(map[rune]bool, len(baseAlphabet))
	var try strings.Builder
	for _, r := range baseAlphabet {
		seen[r] = true
		try.WriteRune(r)
	}
	for _, w := range words {
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				try.WriteRune(r)
			}
		}
	}

	var b strings.Builder
	b.WriteString("SET UTF-8\n")
	b.WriteString("TRY " + try.String() + "\n")
	b.WriteString("ICONV 1\n")
	b.WriteString("ICONV ’ '\n")
	return b.String()
}
