// Package rewrite implements the textual transforms the cleanup pipeline
// applies to plugin source files: whole-identifier renames, removal of
// import lines and JSX usages of deleted units, and pattern-based patches
// on wiring files. Everything here is best-effort text surgery: a pattern
// that no longer matches is a no-op, never an error, so transforms stay
// idempotent across generator template versions.
package rewrite

import (
	"regexp"
	"strings"
)

// ReplaceIdentifier replaces every whole-identifier occurrence of oldID
// with newID and returns the result plus the number of replacements. Occurrences
// embedded in a longer identifier (ExampleComponentPage, MyExampleComponent)
// are left alone; occurrences bounded by non-identifier characters such as
// quotes, path separators, angle brackets, and dots are rewritten.
func ReplaceIdentifier(content, oldID, newID string) (string, int) {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(oldID) + `\b`)
	count := len(re.FindAllStringIndex(content, -1))
	if count == 0 {
		return content, 0
	}
	return re.ReplaceAllString(content, newID), count
}

// StripImports removes any import statement line that references unit as a
// whole identifier. Returns the result and whether anything was removed.
func StripImports(content, unit string) (string, bool) {
	re := regexp.MustCompile(`(?m)^import\b[^\n]*\b` + regexp.QuoteMeta(unit) + `\b[^\n]*\n?`)
	out := re.ReplaceAllString(content, "")
	return out, out != content
}

// Apply runs one compiled patch pattern over content. Returns the result
// and whether any replacement happened.
func Apply(content string, re *regexp.Regexp, replacement string) (string, bool) {
	out := re.ReplaceAllString(content, replacement)
	return out, out != content
}

// openTag matches a line that is exactly one opening JSX tag, like
// "<Grid item md={6}>". Used to detect a wrapper around a removed element.
var openTag = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9]*)(\s[^<>]*)?>$`)

// StripElementUsage removes JSX usages of unit: the lines spanned by each
// <unit .../> or <unit>...</unit> element. When the element is the sole
// child of a wrapper tag on the adjacent lines (the generator's
// "<Grid item><ExampleFetchComponent /></Grid>" shape), the wrapper lines
// go with it. Returns the result and whether anything was removed.
func StripElementUsage(content, unit string) (string, bool) {
	lines := strings.Split(content, "\n")
	var out []string
	changed := false

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !startsElement(trimmed, unit) {
			out = append(out, lines[i])
			continue
		}

		end := elementEnd(lines, i, unit)
		changed = true

		// Pull in a wrapper whose only child is the removed element.
		if len(out) > 0 && end+1 < len(lines) {
			if m := openTag.FindStringSubmatch(strings.TrimSpace(out[len(out)-1])); m != nil {
				if strings.TrimSpace(lines[end+1]) == "</"+m[1]+">" {
					out = out[:len(out)-1]
					end++
				}
			}
		}

		i = end
	}

	if !changed {
		return content, false
	}
	return strings.Join(out, "\n"), true
}

// startsElement reports whether a trimmed line begins a JSX element for
// unit, requiring a real tag boundary after the name.
func startsElement(trimmed, unit string) bool {
	if !strings.HasPrefix(trimmed, "<"+unit) {
		return false
	}
	rest := trimmed[len(unit)+1:]
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '>', '/':
		return true
	}
	return false
}

// elementEnd returns the index of the last line of the element starting at
// line start: the line carrying the "</unit>" closing tag for a paired
// element, or the first line ending in "/>" for a self-closing one. With
// neither in sight only the start line is consumed.
func elementEnd(lines []string, start int, unit string) int {
	// Walk to the end of the opening tag, which may span lines.
	open := start
	for ; open < len(lines); open++ {
		t := strings.TrimSpace(lines[open])
		if strings.HasSuffix(t, "/>") {
			return open
		}
		if strings.HasSuffix(t, ">") {
			break
		}
	}

	closing := "</" + unit + ">"
	for j := open; j < len(lines); j++ {
		if strings.Contains(lines[j], closing) {
			return j
		}
	}
	return start
}
