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
Package banner provides the startup banner display for FlySQL.

The ASCII art logo is embedded at compile time with the //go:embed
directive, so the shell binary carries its branding without any external
file dependency.

Usage:

	func main() {
	    banner.Print()
	    // ... rest of initialization
	}
*/
package banner

import (
	_ "embed" // Required for the //go:embed directive
	"fmt"
	"io"
	"os"
)

// banner contains the ASCII art logo loaded from banner.txt at compile time.
//
//go:embed banner.txt
var banner string

// ANSI escape codes for terminal text formatting.
const (
	// AnsiRed sets the foreground color to red.
	AnsiRed = "\033[31m"

	// AnsiGreen sets the foreground color to green.
	AnsiGreen = "\033[32m"

	// AnsiDim enables dim/faint text rendering.
	AnsiDim = "\033[2m"

	// AnsiBold enables bold text rendering.
	AnsiBold = "\033[1m"

	// AnsiReset clears all text formatting and returns to default.
	AnsiReset = "\033[0m"
)

// Version information for the FlySQL application.
const (
	Version   = "01.26.14"
	Copyright = "(c)2026 Firefly Software Solutions Inc"
	License   = "Licensed under Apache 2.0"
)

// Print displays the startup banner with version and copyright information
// on stdout. Call it once at shell startup.
func Print() {
	PrintTo(os.Stdout)
}

// PrintTo writes the startup banner to the specified writer.
func PrintTo(w io.Writer) {
	fmt.Fprintln(w, AnsiRed+banner+AnsiReset)
	fmt.Fprintln(w, AnsiRed+AnsiBold+":: FlySQL ::                    (v"+Version+")"+AnsiReset)
	fmt.Fprintln(w, AnsiDim+"  SQL Magic-Line Parser and Shell"+AnsiReset)
	fmt.Fprintln(w, AnsiGreen+AnsiBold+Copyright+AnsiReset)
	fmt.Fprintln(w, AnsiGreen+AnsiBold+License+AnsiReset)
	fmt.Fprintln(w)
}
