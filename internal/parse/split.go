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

// sqlStarters are the tokens that can begin a SQL statement for the
// purposes of the splitter. New dialect keywords go here; the control flow
// below never needs to change.
var sqlStarters = map[string]bool{
	"select": true,
	"from":   true,
	"with":   true,
	"pivot":  true,
	"create": true,
	"update": true,
	"delete": true,
	"insert": true,
}

// sqlOperators are substrings that appear in SQL but never in the flag
// prefix. Seeing one of them (outside quotes) is what arms keyword
// detection at all: a line of bare words with no such operator stays on
// the args side, even when those words happen to be SQL keywords.
var sqlOperators = []string{"->>", "->", "::"}

// urlToken matches a connection-URL-shaped token (driver://...).
var urlToken = regexp.MustCompile(`^\w+://`)

// SplitArgsAndSQL splits a command line into a leading run of shell-style
// flags/arguments and the SQL statement that follows. The boundary is the
// start of the earliest unquoted token that is a recognized SQL statement
// starter, looks like a connection URL, or carries a SQL-only operator;
// the prefix keeps its trailing whitespace verbatim. This is a string-level heuristic, not a SQL
// grammar: when nothing identifies a SQL start, the whole line is treated
// as arguments and sqlLine is empty.
func SplitArgsAndSQL(line string) (argsLine, sqlLine string) {
	if !containsUnquoted(line, sqlOperators) {
		return line, ""
	}
	if i := sqlStartIndex(line); i >= 0 {
		return line[:i], line[i:]
	}
	return line, ""
}

// containsUnquoted reports whether any of subs occurs in line outside of
// single or double quoted runs.
func containsUnquoted(line string, subs []string) bool {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		default:
			for _, sub := range subs {
				if strings.HasPrefix(line[i:], sub) {
					return true
				}
			}
		}
	}
	return false
}

// sqlStartIndex returns the byte offset of the first unquoted token that
// starts a SQL statement, or -1. Quoted spans are part of their token, so
// keywords and URLs inside string literals never match.
func sqlStartIndex(line string) int {
	var quote byte
	i, n := 0, len(line)
	for i < n {
		for i < n && isSpaceByte(line[i]) {
			i++
		}
		if i >= n {
			break
		}
		start := i
		for i < n {
			c := line[i]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '\'' || c == '"':
				quote = c
			case isSpaceByte(c):
				// Token ends here.
			}
			if quote == 0 && isSpaceByte(c) {
				break
			}
			i++
		}
		tok := line[start:i]
		if sqlStarters[strings.ToLower(tok)] || urlToken.MatchString(tok) ||
			containsUnquoted(tok, sqlOperators) {
			return start
		}
	}
	return -1
}
