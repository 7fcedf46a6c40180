// =============================================================================
// Barcode Transaction Processor - Mapping Literal Codec
// =============================================================================
//
// The product registry is persisted as a single mapping literal:
//
//   {'BEVG': 'Beverages', 'CANF': 'Canned food', 'FRZN': 'Frozen food'}
//
// Every key and value is a quoted string. The literal is a subset of YAML
// flow syntax, so decoding goes through yaml.v3's node API, which keeps the
// key order of the source. Encoding is done here so the output stays readable
// by the tools that wrote the original stores.
//
// =============================================================================

package literal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Entry is one key/value pair of a mapping literal.
type Entry struct {
	Key   string
	Value string
}

// =============================================================================
// DECODING
// =============================================================================

// Decode parses a mapping literal and returns its entries in source order.
//
// RETURNS:
//   - The entries. A key that appears twice keeps its first position and
//     takes its last value.
//   - An error if the data is not a single flow mapping of quoted strings.
func Decode(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid mapping literal: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("expected a single mapping literal")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || root.Style&yaml.FlowStyle == 0 {
		return nil, fmt.Errorf("expected a {...} mapping literal at line %d", root.Line)
	}

	entries := make([]Entry, 0, len(root.Content)/2)
	index := make(map[string]int, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, err := quotedString(root.Content[i])
		if err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
		value, err := quotedString(root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("value for %q: %w", key, err)
		}

		if pos, exists := index[key]; exists {
			entries[pos].Value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return entries, nil
}

// quotedString returns the value of a quoted string scalar.
func quotedString(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a string", node.Line)
	}
	if node.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) == 0 {
		return "", fmt.Errorf("line %d: expected a quoted string, got %s", node.Line, node.Value)
	}
	return node.Value, nil
}

// =============================================================================
// ENCODING
// =============================================================================

// Encode renders entries as a single-line mapping literal.
func Encode(entries []Entry) []byte {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(e.Key))
		b.WriteString(": ")
		b.WriteString(Quote(e.Value))
	}
	b.WriteByte('}')
	return []byte(b.String())
}

// FormatList renders values as a list literal, e.g. ['A', 'B'].
func FormatList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Quote renders a string literal.
// Plain text is single-quoted. Text containing a single quote, a backslash or
// any character outside the printable set is double-quoted with \x, \u or \U
// escapes, so the store always reads back. Invalid UTF-8 bytes are written as
// U+FFFD.
func Quote(s string) string {
	if !needsEscaping(s) {
		return "'" + s + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteString(`\ufffd`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case printable(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// needsEscaping reports whether s cannot be written as a plain single-quoted literal.
func needsEscaping(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == utf8.RuneError && size == 1 {
			return true
		}
		if r == '\'' || r == '\\' || !printable(r) {
			return true
		}
	}
	return false
}

// printable reports whether r may appear unescaped in a quoted scalar.
// Line and paragraph separators and the byte order mark are escaped because
// readers fold or strip them.
func printable(r rune) bool {
	switch {
	case r == 0x85, r == 0x2028, r == 0x2029, r == 0xfeff:
		return false
	case r >= 0x20 && r <= 0x7e:
		return true
	case r >= 0xa0 && r <= 0xd7ff:
		return true
	case r >= 0xe000 && r <= 0xfffd:
		return true
	case r >= 0x10000 && r <= 0x10ffff:
		return true
	}
	return false
}
