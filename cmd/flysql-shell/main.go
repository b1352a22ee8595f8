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
Package main is the entry point for the interactive FlySQL shell.

The flysql-shell is a REPL (Read-Eval-Print Loop) for exploring how magic
lines are parsed. Each entered line runs through the full pipeline:

 1. Inline SQL comments are stripped (option flags are left alone)
 2. The line is split into its argument and SQL halves
 3. The connection token, shovel assignment, and SQL are extracted
 4. Escape passes run over the SQL and named parameters are reported

Command Types:
==============

 1. Local Commands (prefixed with \):
    - \q or \quit : Exit the shell
    - \h or \help : Display help information
    - \c or \conn : Show the connections file in use and its sections

 2. Everything else is treated as a magic line and parsed.

Usage Examples:
===============

	flysql> duckdb:// dest << SELECT * FROM work WHERE size > :min
	connection: duckdb://
	result var: dest
	sql:        SELECT * FROM work WHERE size > :min
	params:     :min
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"flysql/internal/args"
	"flysql/internal/banner"
	"flysql/internal/config"
	"flysql/internal/dsn"
	"flysql/internal/errors"
	"flysql/internal/logging"
	"flysql/internal/parse"
)

// isTerminal returns true if stdin is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// shellConfig holds the configuration for the shell.
type shellConfig struct {
	DSNFile     string // Path to the connections file
	HistoryFile string // Path to the readline history file
	Debug       bool   // Enable debug logging
}

// sqlOptions is the option surface used for comment stripping, shared by
// every line the shell processes.
var sqlOptions = args.OptionStrings(args.NewSQLFlags())

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}

	if cfg.Debug {
		logging.SetGlobalLevel(logging.DEBUG)
	}

	if isTerminal() {
		banner.Print()
	}

	rl, err := createReadlineInstance(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize input: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	repl(rl, cfg)
}

// parseFlags loads the base configuration and overlays command-line flags
// on top of it.
func parseFlags() (*shellConfig, error) {
	mgr := config.Global()
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	base := mgr.Get()

	cfg := &shellConfig{HistoryFile: base.HistoryFile}
	flag.StringVar(&cfg.DSNFile, "dsn-file", base.DSNFile, "path to the connections file")
	flag.BoolVar(&cfg.Debug, "debug", strings.EqualFold(base.LogLevel, "debug"), "enable debug logging")
	flag.Parse()
	return cfg, nil
}

// completions offered for tab completion: local commands, the %sql option
// surface, and statement keywords a magic line commonly starts with.
var completions = []string{
	"\\q", "\\quit", "\\h", "\\help", "\\c", "\\conn",
	"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "WITH", "FROM", "PIVOT",
}

// createCompleter creates a readline completer for tab completion.
func createCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(completions)+len(sqlOptions))
	for _, c := range completions {
		items = append(items, readline.PcItem(c))
	}
	for _, opt := range sqlOptions {
		items = append(items, readline.PcItem(opt))
	}
	return readline.NewPrefixCompleter(items...)
}

// createReadlineInstance creates a configured readline instance.
func createReadlineInstance(cfg *shellConfig) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          banner.AnsiBold + "flysql" + banner.AnsiReset + "> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
}

// filterInput filters input runes for readline.
func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false // Disable Ctrl+Z
	}
	return r, true
}

// repl runs the read-eval-print loop until the user exits.
func repl(rl *readline.Instance, cfg *shellConfig) {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return
			}
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "\\") {
			if done := runLocalCommand(line, cfg); done {
				return
			}
			continue
		}

		showParsed(os.Stdout, line, cfg)
	}
}

// runLocalCommand executes a backslash command. It returns true when the
// shell should exit.
func runLocalCommand(line string, cfg *shellConfig) bool {
	switch strings.Fields(line)[0] {
	case "\\q", "\\quit":
		fmt.Println("bye")
		return true
	case "\\h", "\\help":
		printHelp()
	case "\\c", "\\conn":
		printConnections(cfg.DSNFile)
	default:
		fmt.Printf("unknown command: %s (try \\h)\n", line)
	}
	return false
}

// printHelp displays the local command reference.
func printHelp() {
	fmt.Println("Local commands:")
	fmt.Println("  \\q, \\quit   exit the shell")
	fmt.Println("  \\h, \\help   show this help")
	fmt.Println("  \\c, \\conn   show the connections file and its sections")
	fmt.Println()
	fmt.Println("Any other line is parsed as a magic line, for example:")
	fmt.Println("  duckdb:// dest << SELECT * FROM work WHERE size > :min")
	fmt.Println("  [DB_CONFIG_1] SELECT * FROM albums")
}

// printConnections lists the sections of the connections file.
func printConnections(path string) {
	f, err := dsn.Load(path)
	if err != nil {
		fmt.Println(errors.FormatError(errors.ConfigUnreadable(path, err)))
		return
	}
	names := f.SectionNames()
	sort.Strings(names)
	fmt.Printf("connections file: %s\n", path)
	for _, name := range names {
		fmt.Printf("  [%s] %s\n", name, redactPassword(name, f))
	}
}

// redactPassword renders a section URL with its password hidden.
func redactPassword(name string, f *dsn.File) string {
	s, ok := f.Section(name)
	if !ok {
		return ""
	}
	if s.Password != "" {
		s.Password = "***"
	}
	return s.URL()
}

// showParsed runs the parse pipeline over one line and prints the result.
func showParsed(w io.Writer, line string, cfg *shellConfig) {
	stripped := parse.WithoutSQLComment(sqlOptions, line)
	argsLine, _ := parse.SplitArgsAndSQL(stripped)

	if argsLine != stripped {
		if err := args.CheckDuplicates(args.CmdSQL, args.Split(argsLine), args.NewSQLFlags()); err != nil {
			fmt.Fprintln(w, errors.FormatError(err))
			return
		}
	}

	cmd := parse.Parse(stripped, cfg.DSNFile)
	if cmd.Connection == "" {
		cmd.Connection = parse.DefaultConnection(cfg.DSNFile)
	}

	sql, _ := parse.EscapeStringLiteralColons(cmd.SQL)
	sql, _ = parse.EscapeSlicingNotation(sql)
	params := parse.FindNamedParameters(sql)

	fmt.Fprintf(w, "connection: %s\n", cmd.Connection)
	if cmd.ResultVar != "" {
		assign := "<<"
		if cmd.ReturnResultVar {
			assign = "=<<"
		}
		fmt.Fprintf(w, "result var: %s (%s)\n", cmd.ResultVar, assign)
	}
	fmt.Fprintf(w, "sql:        %s\n", cmd.SQL)
	if len(params) > 0 {
		fmt.Fprintf(w, "params:     :%s\n", strings.Join(params, " :"))
	}
}
