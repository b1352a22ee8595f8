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

import "testing"

func TestSplitArgsAndSQL(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantArgs string
		wantSQL  string
	}{
		{
			name:     "no-query",
			line:     "-p --save snippet -N",
			wantArgs: "-p --save snippet -N",
			wantSQL:  "",
		},
		{
			name:     "no-args",
			line:     "select * from authors",
			wantArgs: "select * from authors",
			wantSQL:  "",
		},
		{
			name:     "no-args-json",
			line:     "select '[1,2,3]'::json -> 1",
			wantArgs: "",
			wantSQL:  "select '[1,2,3]'::json -> 1",
		},
		{
			name:     "select",
			line:     "--save snippet --alias query1 select '[1,2,3]'::json -> 1",
			wantArgs: "--save snippet --alias query1 ",
			wantSQL:  "select '[1,2,3]'::json -> 1",
		},
		{
			name:     "from",
			line:     "--save snippet --alias query1 from authors select name where id = (readers ->> 0)",
			wantArgs: "--save snippet --alias query1 ",
			wantSQL:  "from authors select name where id = (readers ->> 0)",
		},
		{
			name:     "with",
			line:     "--save snippet --alias query1 with temp as (select * from authors) select name where id = (publishers -> 'Scott')",
			wantArgs: "--save snippet --alias query1 ",
			wantSQL:  "with temp as (select * from authors) select name where id = (publishers -> 'Scott')",
		},
		{
			name:     "pivot",
			line:     "--save snippet --alias query1 pivot authors on id where name = (names ->> 'Brenda')",
			wantArgs: "--save snippet --alias query1 ",
			wantSQL:  "pivot authors on id where name = (names ->> 'Brenda')",
		},
		{
			name:     "create",
			line:     "-p --save snippet -N create table (names -> 1) (id INT, name VARCHAR(10))",
			wantArgs: "-p --save snippet -N ",
			wantSQL:  "create table (names -> 1) (id INT, name VARCHAR(10))",
		},
		{
			name:     "update",
			line:     "-p --save snippet -N update authors where id = '[5,6]::json'->1",
			wantArgs: "-p --save snippet -N ",
			wantSQL:  "update authors where id = '[5,6]::json'->1",
		},
		{
			name:     "delete",
			line:     "-p --save snippet -N delete from authors where name = (books->>'Turner')",
			wantArgs: "-p --save snippet -N ",
			wantSQL:  "delete from authors where name = (books->>'Turner')",
		},
		{
			name:     "insert",
			line:     "-p --save snippet -N insert into authors values('[100]'::json->0)",
			wantArgs: "-p --save snippet -N ",
			wantSQL:  "insert into authors values('[100]'::json->0)",
		},
		{
			name:     "quoted-operator-only",
			line:     "--save snippet select fans from 'arrow->quiver'",
			wantArgs: "--save snippet select fans from 'arrow->quiver'",
			wantSQL:  "",
		},
		{
			name:     "connection-url-token",
			line:     "--save snippet duckdb:// select col::int from t",
			wantArgs: "--save snippet ",
			wantSQL:  "duckdb:// select col::int from t",
		},
		{
			name:     "operator-token-boundary",
			line:     "--save snippet col::int",
			wantArgs: "--save snippet ",
			wantSQL:  "col::int",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotArgs, gotSQL := SplitArgsAndSQL(tt.line)
			if gotArgs != tt.wantArgs {
				t.Errorf("args = %q, want %q", gotArgs, tt.wantArgs)
			}
			if gotSQL != tt.wantSQL {
				t.Errorf("sql = %q, want %q", gotSQL, tt.wantSQL)
			}
		})
	}
}
