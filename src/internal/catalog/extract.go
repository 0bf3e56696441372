// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package catalog

import (
	"regexp"
	"strings"

	"github.com/sailflow/planks-mcp/src/logger"
)

// Metadata is what [Extractor] derives from one source text.
// Every field is optional and stays zero when its pattern does not match.
type Metadata struct {
	Description string
	Props       []string
	Variants    *Variants
}

var (
	// descriptionPattern matches a three-line doc comment and captures its text line:
	//
	//	/**
	//	 * Primary action button.
	//	 */
	descriptionPattern = regexp.MustCompile(`/\*\*\s*\n\s*\*\s*(.+?)\s*\n\s*\*/`)

	// propsPattern matches the first exported ...Props interface or object type
	// and captures its name and body up to the first closing brace.
	propsPattern = regexp.MustCompile(`export\s+(?:interface|type)\s+(\w+Props)\b[^{;]*\{([^}]*)\}`)

	// variantsPattern matches the first variants block, allowing exactly one
	// level of nested braces inside it.
	variantsPattern = regexp.MustCompile(`\bvariants:\s*\{((?:[^{}]|\{[^{}]*\})*)\}`)

	// variantGroupPattern matches one nested group inside a variants block.
	variantGroupPattern = regexp.MustCompile(`([\w-]+):\s*\{([^{}]*)\}`)
)

// Extractor derives [Metadata] from component source text.
//
// Extraction is a best-effort textual heuristic over regular expressions, not
// a parser. Unusual formatting, duplicated declarations or braces nested more
// than one level inside a variants block yield partial or empty metadata.
// Extraction never fails: a miss leaves the field absent.
type Extractor struct {
	log logger.Logger
}

// NewExtractor creates an Extractor that logs pattern misses to log.
func NewExtractor(log logger.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract derives the description, props and variants of one source text.
//
// Parameters:
//   - source: Full text of one component file
//
// Returns:
//   - Metadata: Extracted fields; zero when nothing matched
func (e *Extractor) Extract(source string) (md Metadata) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Errorf("metadata extraction aborted: %v", r)
			md = Metadata{}
		}
	}()

	md.Description = extractDescription(source)
	md.Props = extractProps(source)
	md.Variants = extractVariants(source)
	return md
}

// extractDescription returns the text line of the first single-line doc comment.
func extractDescription(source string) string {
	m := descriptionPattern.FindStringSubmatch(source)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractProps returns prop names of the first exported ...Props declaration
// in declaration order, or nil when there is none. A declaration with an
// empty body yields an empty, non-nil slice.
func extractProps(source string) []string {
	m := propsPattern.FindStringSubmatch(source)
	if m == nil {
		return nil
	}

	props := []string{}
	for _, line := range strings.Split(m[2], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isCommentLine(line) {
			continue
		}
		name, _, _ := strings.Cut(line, ":")
		name = strings.TrimSpace(strings.Replace(name, "?", "", 1))
		if name == "" {
			continue
		}
		props = append(props, name)
	}
	return props
}

// extractVariants returns the groups of the first variants block, or nil when
// there is no block or the block has no groups.
func extractVariants(source string) *Variants {
	block := variantsPattern.FindStringSubmatch(source)
	if block == nil {
		return nil
	}

	groups := variantGroupPattern.FindAllStringSubmatch(block[1], -1)
	if len(groups) == 0 {
		return nil
	}

	variants := NewVariants()
	for _, g := range groups {
		variants.Set(g[1], variantOptions(g[2]))
	}
	return variants
}

// variantOptions splits a group body into option names. Entries are separated
// by newlines or by commas outside quoted strings; the option name is the
// text before the first colon with surrounding quotes removed.
func variantOptions(body string) []string {
	options := []string{}
	for _, entry := range splitEntries(body) {
		entry = strings.TrimSpace(entry)
		if entry == "" || isCommentLine(entry) {
			continue
		}
		key, _, _ := strings.Cut(entry, ":")
		key = strings.Trim(strings.TrimSpace(key), `"'`+"`")
		if key == "" {
			continue
		}
		options = append(options, key)
	}
	return options
}

// splitEntries splits s on newlines and on commas that are not inside a
// quoted string. Quotes never span lines.
func splitEntries(s string) []string {
	var (
		entries []string
		quote   rune
		start   int
	)
	for i, r := range s {
		switch {
		case r == '\n':
			entries = append(entries, s[start:i])
			start = i + 1
			quote = 0
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == ',':
			entries = append(entries, s[start:i])
			start = i + 1
		}
	}
	return append(entries, s[start:])
}

// isCommentLine reports whether a trimmed line starts a comment.
func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "/*")
}
