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
Package args defines the option surface of the FlySQL magic commands and
the checks that run over a raw argument vector before parsing.

Each command gets its flags from a factory (NewSQLFlags, NewSQLPlotFlags,
NewSQLCmdFlags) so that every caller sees the same option set: the line
splitter, the duplicate checker, and the comment stripper all derive their
knowledge of "what is a flag" from the same FlagSet.
*/
package args

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"flysql/internal/errors"
)

// Magic command names.
const (
	CmdSQL     = "%sql"
	CmdSQLPlot = "%sqlplot"
	CmdSQLCmd  = "%sqlcmd"
)

// NewSQLFlags returns the option set of the %sql command.
func NewSQLFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(CmdSQL, pflag.ContinueOnError)
	fs.BoolP("connections", "l", false, "list stored connections")
	fs.BoolP("close", "x", false, "close a named connection")
	fs.StringP("creator", "c", "", "use a creator function to open the connection")
	fs.StringP("section", "s", "", "connect using a section of the connections file")
	fs.BoolP("persist", "p", false, "persist a result set as a table")
	fs.Bool("append", false, "append when persisting instead of failing")
	fs.StringP("connection-arguments", "a", "", "extra keyword arguments for the connection")
	fs.StringP("file", "f", "", "run the query stored in a file")
	fs.BoolP("no-index", "n", false, "do not persist the index column")
	fs.StringP("save", "S", "", "save this query as a snippet")
	fs.StringP("alias", "A", "", "alias for the connection")
	fs.StringArrayP("with", "w", nil, "prepend saved snippets as CTEs")
	fs.StringArray("interact", nil, "build the query interactively from widgets")
	fs.Bool("no-execute", false, "parse and template the query without running it")
	return fs
}

// NewSQLPlotFlags returns the option set of the %sqlplot command.
func NewSQLPlotFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(CmdSQLPlot, pflag.ContinueOnError)
	fs.StringP("table", "t", "", "table to plot from")
	fs.StringP("schema", "s", "", "schema holding the table")
	fs.StringArrayP("column", "c", nil, "column(s) to plot")
	fs.StringP("orient", "o", "v", "bar orientation")
	fs.IntP("bins", "b", 50, "histogram bin count")
	fs.StringP("breaks", "B", "", "histogram break points")
	fs.StringP("binwidth", "W", "", "histogram bin width")
	fs.BoolP("show-numbers", "S", false, "label bars with their values")
	fs.StringArrayP("with", "w", nil, "prepend saved snippets as CTEs")
	return fs
}

// NewSQLCmdFlags returns the option set of the %sqlcmd command.
func NewSQLCmdFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet(CmdSQLCmd, pflag.ContinueOnError)
	fs.StringP("table", "t", "", "table to inspect")
	fs.StringP("schema", "s", "", "schema holding the table")
	fs.StringP("output", "o", "", "write output to a file")
	return fs
}

// OptionStrings returns every option spelling the FlagSet accepts, short
// and long, in the forms they appear on a line ("-c", "--creator").
func OptionStrings(fs *pflag.FlagSet) []string {
	var opts []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			opts = append(opts, "-"+f.Shorthand)
		}
		opts = append(opts, "--"+f.Name)
	})
	return opts
}

// Split splits a magic line into an argument vector, honoring shell
// quoting. Lines that are not valid shell syntax (an unclosed quote in
// SQL text, say) fall back to whitespace splitting rather than failing,
// since the line as a whole is not a shell command.
func Split(line string) []string {
	argv, err := shellquote.Split(line)
	if err != nil {
		return strings.Fields(line)
	}
	return argv
}

// allowedDuplicates lists options that may legitimately repeat per command.
var allowedDuplicates = map[string][]string{
	CmdSQL:     {"-w", "--with", "--append", "--interact"},
	CmdSQLPlot: {"-w", "--with"},
	CmdSQLCmd:  {},
}

// CheckDuplicates verifies that no option is given twice on one line,
// either by repeating a spelling or by mixing an option's short and long
// forms. The FlagSet supplies the short/long pairing.
func CheckDuplicates(cmd string, argv []string, fs *pflag.FlagSet) error {
	allowed := make(map[string]bool)
	for _, a := range allowedDuplicates[cmd] {
		allowed[a] = true
	}

	// Map each spelling to its option so alias collisions can be paired up.
	type option struct {
		short, long string
	}
	spelling := make(map[string]option)
	fs.VisitAll(func(f *pflag.Flag) {
		opt := option{long: "--" + f.Name}
		if f.Shorthand != "" {
			opt.short = "-" + f.Shorthand
		}
		spelling[opt.long] = opt
		if opt.short != "" {
			spelling[opt.short] = opt
		}
	})

	counts := make(map[string]int)
	for _, tok := range argv {
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			continue
		}
		// Only count spellings we recognize; anything else is SQL text or
		// an unknown flag left for the parser to reject.
		if eq := strings.Index(tok, "="); eq > 0 {
			tok = tok[:eq]
		}
		if _, ok := spelling[tok]; ok {
			counts[tok]++
		}
	}

	var duplicates []string
	aliasSeen := make(map[string]bool)
	var aliases []string
	for tok, n := range counts {
		opt := spelling[tok]
		if n > 1 && !allowed[tok] {
			duplicates = append(duplicates, tok)
		}
		if opt.short != "" && counts[opt.short] > 0 && counts[opt.long] > 0 &&
			!allowed[opt.short] && !allowed[opt.long] && !aliasSeen[opt.long] {
			aliasSeen[opt.long] = true
			aliases = append(aliases, fmt.Sprintf("%s or %s", opt.short, opt.long))
		}
	}

	if len(duplicates) == 0 && len(aliases) == 0 {
		return nil
	}

	var messages []string
	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		messages = append(messages, fmt.Sprintf(
			"Duplicate arguments in %s. Please use only one of each of the following: %s.",
			cmd, strings.Join(duplicates, ", ")))
	}
	if len(aliases) > 0 {
		sort.Strings(aliases)
		messages = append(messages, fmt.Sprintf(
			"Duplicate aliases for arguments in %s. Please use either one of %s.",
			cmd, strings.Join(aliases, ", ")))
	}
	return errors.DuplicateArgument(strings.Join(messages, " "))
}

// ParseLine splits a line, checks it for duplicated options, and parses it
// into the FlagSet. The remaining positional arguments are returned.
func ParseLine(cmd, line string, fs *pflag.FlagSet) ([]string, error) {
	argv := Split(line)
	if err := CheckDuplicates(cmd, argv, fs); err != nil {
		return nil, err
	}
	if err := fs.Parse(argv); err != nil {
		return nil, errors.Usage(err.Error())
	}
	return fs.Args(), nil
}
