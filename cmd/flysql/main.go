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
FlySQL command-line tool.

flysql runs the magic-line parsing pipeline from the command line: it
splits a line into arguments and SQL, resolves the connection token,
escapes literal colons and slicing notation, and reports the named
parameters a query binds.

Usage:

	flysql parse "duckdb:// dest << SELECT * FROM work"
	flysql params "SELECT * FROM t WHERE c = ':v' AND x > :low"
	flysql split "--save snippet SELECT * FROM t"
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"flysql/internal/args"
	"flysql/internal/config"
	"flysql/internal/errors"
	"flysql/internal/logging"
	"flysql/internal/parse"
)

var (
	dsnFile  string
	jsonMode bool
	logLevel string
)

func main() {
	mgr := config.Global()
	if err := mgr.Load(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
	cfg := mgr.Get()

	root := &cobra.Command{
		Use:           "flysql",
		Short:         "SQL magic-line parsing toolkit",
		Long:          "flysql parses notebook-style SQL magic lines: connection tokens,\nshovel assignments, option flags, and named query parameters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, cmdArgs []string) {
			logging.SetGlobalLevel(logging.ParseLevel(logLevel))
			logging.SetJSONMode(cfg.LogJSON)
		},
	}
	root.PersistentFlags().StringVar(&dsnFile, "dsn-file", cfg.DSNFile, "path to the connections file")
	root.PersistentFlags().BoolVar(&jsonMode, "json", false, "emit JSON instead of tables")
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newParamsCmd())
	root.AddCommand(newSplitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <line>",
		Short: "Parse a magic line into connection, SQL, and result target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			line := cmdArgs[0]

			flags := args.NewSQLFlags()
			stripped := parse.WithoutSQLComment(args.OptionStrings(flags), line)
			argsLine, sqlLine := parse.SplitArgsAndSQL(stripped)

			if argsLine != stripped {
				// Only the argument half goes through the option parser;
				// SQL text may contain tokens that look like flags.
				if _, err := args.ParseLine(args.CmdSQL, argsLine, flags); err != nil {
					return err
				}
			}

			if fields := strings.Fields(stripped); len(fields) > 0 {
				tok := fields[0]
				if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") &&
					parse.ConnectionString(tok, dsnFile) == "" {
					return errors.SectionNotFound(strings.Trim(tok, "[]"), dsnFile)
				}
			}

			parsed := parse.Parse(stripped, dsnFile)
			if parsed.Connection == "" {
				parsed.Connection = parse.DefaultConnection(dsnFile)
			}

			if jsonMode {
				return emitJSON(cmd, struct {
					parse.Command
					ArgsLine string `json:"args_line"`
					SQLLine  string `json:"sql_line"`
				}{parsed, argsLine, sqlLine})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Field", "Value"})
			table.Append([]string{"connection", parsed.Connection})
			table.Append([]string{"sql", parsed.SQL})
			table.Append([]string{"result_var", parsed.ResultVar})
			table.Append([]string{"return_result_var", fmt.Sprintf("%t", parsed.ReturnResultVar)})
			table.Render()
			return nil
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <sql>",
		Short: "Escape literal colons and slicing, then list named parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			query := cmdArgs[0]

			query, literals := parse.EscapeStringLiteralColons(query)
			query, bounds := parse.EscapeSlicingNotation(query)
			params := parse.FindNamedParameters(query)

			if jsonMode {
				return emitJSON(cmd, struct {
					SQL        string   `json:"sql"`
					Parameters []string `json:"parameters"`
					Escaped    []string `json:"escaped"`
				}{query, params, append(literals, bounds...)})
			}

			fmt.Fprintln(cmd.OutOrStdout(), query)
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Parameter"})
			for _, p := range params {
				table.Append([]string{":" + p})
			}
			table.Render()
			if escaped := append(literals, bounds...); len(escaped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "escaped literals: %s\n", strings.Join(escaped, ", "))
			}
			return nil
		},
	}
}

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <line>",
		Short: "Show where a magic line divides into arguments and SQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			argsLine, sqlLine := parse.SplitArgsAndSQL(cmdArgs[0])

			if jsonMode {
				return emitJSON(cmd, struct {
					Args string `json:"args"`
					SQL  string `json:"sql"`
				}{argsLine, sqlLine})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Part", "Text"})
			table.Append([]string{"args", argsLine})
			table.Append([]string{"sql", sqlLine})
			table.Render()
			return nil
		},
	}
}

func emitJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
