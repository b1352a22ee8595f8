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

/*
Package parse turns one free-form FlySQL command line into a structured
request the rest of the client can act on.

A line mixes up to four things that the shell's flag parser cannot tell
apart on its own:

 1. Shell-style flags and their values ("--save snippet -p")
 2. A connection specifier: a full URL, a bare driver prefix
    ("duckdb://"), an environment variable ("$DATABASE_URL"), or a
    reference to a section of the connections file ("[DB_CONFIG_1]")
 3. A shovel assignment ("dest << ..." or "dest =<< ...") naming the
    variable that receives the result set
 4. The SQL statement itself

The same punctuation is overloaded across those domains: a colon starts a
named bind parameter (:name) but also appears inside string literals and
slicing notation ('hello'[1:5]); a double dash starts a flag but also a SQL
comment. Every routine in this package therefore shares the same small
quote-tracking discipline (outside / in-single-quote / in-double-quote)
instead of a full SQL grammar.

All functions here are pure over their inputs except for reading the
connections file and, in the convenience wrappers, the process environment.
They never return errors: ambiguous input degrades to "no match" and the
caller decides whether a missing connection is fatal.
*/
package parse

import (
	"os"
	"regexp"
	"strings"
	"unicode"

	"flysql/internal/dsn"
)

// Command is the structured result of parsing one command line.
type Command struct {
	// Connection is the resolved connection string, or "" when the line
	// carried no connection specifier (the caller reuses the current one).
	Connection string `json:"connection"`

	// SQL is the statement body with internal newlines preserved verbatim.
	SQL string `json:"sql"`

	// ResultVar names the variable receiving the result set. Empty when
	// the line had no shovel assignment.
	ResultVar string `json:"result_var,omitempty"`

	// ReturnResultVar is true only for the =<< form of the shovel
	// operator, which also returns the assigned result.
	ReturnResultVar bool `json:"return_result_var"`
}

// shovelLeft matches the text preceding a << operator when that text forms
// a result-variable assignment: one identifier, optionally followed by =.
// \s deliberately includes newlines, so the identifier and the operator may
// sit on different lines.
var shovelLeft = regexp.MustCompile(`^\s*(\w+)\s*(=?)\s*$`)

// Parse separates a command line into connection information, SQL, and an
// optional result-variable assignment. dsnPath points at the connections
// file consulted for [section] specifiers. Environment variables in the
// connection token are expanded against the process environment.
func Parse(line, dsnPath string) Command {
	return ParseWithEnv(line, dsnPath, os.Getenv)
}

// ParseWithEnv is Parse with an explicit environment lookup, so tests and
// embedding callers can fix the environment deterministically. A nil getenv
// falls back to os.Getenv.
func ParseWithEnv(line, dsnPath string, getenv func(string) string) Command {
	var cmd Command

	first, rest := splitOnce(line)
	if first == "" {
		return cmd
	}

	cmd.SQL = line

	// The first token is a connection specifier when, after environment
	// expansion, it looks like a URL or credentials, or when it names a
	// section of the connections file. Plain words are never a connection.
	expanded := expandVars(first, getenv)
	switch {
	case strings.Contains(expanded, "@") || strings.Contains(expanded, "://"):
		cmd.Connection = expanded
		cmd.SQL = rest
	case strings.HasPrefix(expanded, "[") && strings.HasSuffix(expanded, "]"):
		cmd.Connection = sectionURL(strings.TrimSuffix(strings.TrimPrefix(expanded, "["), "]"), dsnPath)
		cmd.SQL = rest
	}

	// Shovel assignment: everything before the first << must reduce to a
	// lone identifier (plus an optional =). SQL text that merely contains
	// << does not match and passes through untouched.
	if i := strings.Index(cmd.SQL, "<<"); i >= 0 {
		if m := shovelLeft.FindStringSubmatch(cmd.SQL[:i]); m != nil {
			cmd.ResultVar = m[1]
			cmd.ReturnResultVar = m[2] == "="
			// Trim spaces only: a leading newline belongs to the SQL body
			// and must round-trip exactly.
			cmd.SQL = strings.Trim(cmd.SQL[i+2:], " ")
		}
	}

	return cmd
}

// ConnectionString resolves a raw connection token against the connections
// file at dsnPath. Empty tokens stay empty (reuse the current connection),
// full URLs pass through unchanged, [section] references are built from the
// file, and anything else resolves to "" rather than guessing.
func ConnectionString(token, dsnPath string) string {
	return ConnectionStringWithEnv(token, dsnPath, os.Getenv)
}

// ConnectionStringWithEnv is ConnectionString with an explicit environment
// lookup.
func ConnectionStringWithEnv(token, dsnPath string, getenv func(string) string) string {
	token = expandVars(token, getenv)
	if token == "" {
		return ""
	}
	if strings.Contains(token, "://") {
		return token
	}
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return sectionURL(strings.TrimSuffix(strings.TrimPrefix(token, "["), "]"), dsnPath)
	}
	return ""
}

// DefaultConnection returns the connection URL from the reserved default
// section of the connections file, or "" when the file has no default
// section or cannot be read. An empty result signals "no default
// available", not an error.
func DefaultConnection(dsnPath string) string {
	f, err := dsnFiles.Load(dsnPath)
	if err != nil {
		return ""
	}
	url, ok := f.DefaultURL()
	if !ok {
		return ""
	}
	return url
}

// dsnFiles caches parsed connections files across invocations. Entries are
// invalidated when the file on disk changes.
var dsnFiles = dsn.NewCache()

// sectionURL renders the connection URL of one named section. Unknown
// sections and unreadable files resolve to "".
func sectionURL(section, dsnPath string) string {
	f, err := dsnFiles.Load(dsnPath)
	if err != nil {
		return ""
	}
	url, ok := f.SectionURL(section)
	if !ok {
		return ""
	}
	return url
}

// splitOnce splits s into its first whitespace-delimited token and the
// remainder. Leading whitespace is dropped and the remainder starts at its
// first non-whitespace character; trailing whitespace stays with it.
func splitOnce(s string) (first, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

// expandVars substitutes $NAME and ${NAME} references in s. Undefined
// variables expand to the empty string, shell style.
func expandVars(s string, getenv func(string) string) string {
	if getenv == nil {
		getenv = os.Getenv
	}
	return os.Expand(s, getenv)
}
