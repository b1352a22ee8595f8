/*
 * Copyright (c) 2026 Firefly Software Solutions Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parse

import (
	"regexp"
	"strings"
)

// EscapeStringLiteralColons escapes colon-prefixed identifiers that sit
// immediately inside a quoted string (':name' or ":name") so the bind
// layer does not mistake them for parameters. The doubled-quote escaping
// conventions ('' and "") are covered because the inner quote pair forms
// its own match. It returns the rewritten query and the identifiers whose
// colons were escaped, in order of appearance, duplicates included.
//
// The pass is a no-op on queries without colon-adjacent quoted literals
// and never touches a colon that already carries a backslash.
func EscapeStringLiteralColons(query string) (string, []string) {
	var (
		out   strings.Builder
		found []string
	)
	out.Grow(len(query))

	for i := 0; i < len(query); i++ {
		c := query[i]
		if (c == '\'' || c == '"') && (i == 0 || query[i-1] != '\\') {
			if name, end, ok := quotedColonName(query, i); ok {
				out.WriteByte(c)
				out.WriteString(`\:`)
				out.WriteString(name)
				out.WriteByte(c)
				found = append(found, name)
				i = end
				continue
			}
		}
		out.WriteByte(c)
	}
	return out.String(), found
}

// quotedColonName reports whether query[i] opens a quote immediately
// followed by a colon, an identifier, and the matching closing quote. It
// returns the identifier and the index of the closing quote.
func quotedColonName(query string, i int) (name string, end int, ok bool) {
	q := query[i]
	j := i + 1
	if j >= len(query) || query[j] != ':' {
		return "", 0, false
	}
	j++
	start := j
	for j < len(query) && isWordByte(query[j]) {
		j++
	}
	if j == start || j >= len(query) || query[j] != q {
		return "", 0, false
	}
	return query[start:j], j, true
}

// slicePattern matches slicing notation applied to a value: an integer
// start bound, an integer end bound, or both ([1:5], [:2], [3:]). A bare
// [:] carries no digits next to the colon and cannot be confused with a
// named parameter, so it is left alone.
var slicePattern = regexp.MustCompile(`\[(\d*):(\d*)\]`)

// EscapeSlicingNotation escapes the colon inside slicing notation so it is
// not read as a named bind parameter. found records the end-bound digits
// of each match, or the start bound when only the start is present.
func EscapeSlicingNotation(query string) (string, []string) {
	var found []string
	escaped := slicePattern.ReplaceAllStringFunc(query, func(m string) string {
		sub := slicePattern.FindStringSubmatch(m)
		if sub[1] == "" && sub[2] == "" {
			return m
		}
		if sub[2] != "" {
			found = append(found, sub[2])
		} else {
			found = append(found, sub[1])
		}
		return "[" + sub[1] + `\:` + sub[2] + "]"
	})
	return escaped, found
}

// FindNamedParameters returns the named bind parameters of query in first
// occurrence order with no duplicates. Colons inside quoted runs are
// skipped, as is any colon preceded by another colon (a :: cast), a word
// character, or a backslash left by the escape passes. This is the
// authoritative list the execution layer must supply bindings for.
func FindNamedParameters(query string) []string {
	var (
		names []string
		seen  = make(map[string]bool)
		quote byte
	)
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ':':
			if i > 0 {
				p := query[i-1]
				if p == ':' || p == '\\' || isWordByte(p) {
					continue
				}
			}
			j := i + 1
			for j < len(query) && isWordByte(query[j]) {
				j++
			}
			if j == i+1 {
				continue
			}
			name := query[i+1 : j]
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			i = j - 1
		}
	}
	return names
}

// isWordByte reports whether b is [A-Za-z0-9_].
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
