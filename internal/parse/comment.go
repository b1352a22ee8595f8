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

import "strings"

// WithoutSQLComment strips a trailing -- comment from a command line.
// flags lists the option strings the surrounding command defines (with
// their dashes, e.g. "--persist", "-p"); a --token is a comment start only
// when it is not one of them. Tokenization tracks single and double quote
// state, so dashes inside string literals never start a comment. A comment
// glued to the preceding token (author--not a flag) is cut at its internal
// dashes, except when the token is the value of a preceding flag.
func WithoutSQLComment(flags []string, line string) string {
	known := make(map[string]bool, len(flags)*3)
	for _, f := range flags {
		known[f] = true
		// Definitions may arrive without their dashes.
		if !strings.HasPrefix(f, "-") {
			known["-"+f] = true
			known["--"+f] = true
		}
	}

	toks := tokenizeQuoted(line)
	var kept []string
	for idx, tok := range toks {
		if strings.HasPrefix(tok, "--") && !known[tok] {
			break
		}
		if i := strings.Index(tok, "--"); i > 0 &&
			!strings.ContainsAny(tok[:i], `'"`) &&
			!(idx > 0 && known[toks[idx-1]]) {
			kept = append(kept, tok[:i])
			break
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// tokenizeQuoted splits line on whitespace while tracking quote state.
// Quote characters stay in the tokens, whitespace inside a quoted run does
// not end a token, and a quote character toggles the in-string state only
// when not already inside the other quote type.
func tokenizeQuoted(line string) []string {
	var (
		toks  []string
		cur   strings.Builder
		quote byte
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
			cur.WriteByte(c)
		case quote != 0 && c == quote:
			quote = 0
			cur.WriteByte(c)
		case quote == 0 && isSpaceByte(c):
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return toks
}

// isSpaceByte reports whether b is ASCII whitespace.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
