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

// testFlags mirrors the option strings the sql command defines.
var testFlags = []string{
	"-l", "--connections",
	"-x", "--close",
	"-c", "--creator",
	"-s", "--section",
	"-p", "--persist",
	"--append",
	"-a", "--connection-arguments",
	"-f", "--file",
}

func TestWithoutSQLComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "plain",
			line: "SELECT * FROM author",
			want: "SELECT * FROM author",
		},
		{
			name: "with-arg",
			line: "--file moo.txt --persist SELECT * FROM author",
			want: "--file moo.txt --persist SELECT * FROM author",
		},
		{
			name: "with-comment",
			line: "SELECT * FROM author -- uff da",
			want: "SELECT * FROM author",
		},
		{
			name: "with-arg-and-comment",
			line: "--file moo.txt --persist SELECT * FROM author -- uff da",
			want: "--file moo.txt --persist SELECT * FROM author",
		},
		{
			name: "unspaced-comment",
			line: "SELECT * FROM author --uff da",
			want: "SELECT * FROM author",
		},
		{
			name: "glued-comment",
			line: "SELECT * FROM author--uff da",
			want: "SELECT * FROM author",
		},
		{
			name: "dashes-in-string",
			line: "SELECT '--very --confusing' FROM author -- uff da",
			want: "SELECT '--very --confusing' FROM author",
		},
		{
			name: "with-arg-and-leading-comment",
			line: "--file moo.txt --persist --comment, not arg",
			want: "--file moo.txt --persist",
		},
		{
			name: "persist-with-value",
			line: "--persist my_table --uff da",
			want: "--persist my_table",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithoutSQLComment(testFlags, tt.line); got != tt.want {
				t.Errorf("WithoutSQLComment(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestWithoutSQLCommentDashlessFlagDefinitions(t *testing.T) {
	// Flag definitions may be supplied without their leading dashes.
	flags := []string{"file", "persist"}
	line := "--file moo.txt --persist SELECT * FROM author -- uff da"
	want := "--file moo.txt --persist SELECT * FROM author"
	if got := WithoutSQLComment(flags, line); got != want {
		t.Errorf("WithoutSQLComment(%q) = %q, want %q", line, got, want)
	}
}
