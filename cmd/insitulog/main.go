// insitulog - In-Situ instrument log converter
//
// insitulog converts water-quality instrument log exports (delimited,
// fixed-width, HTML, zip-wrapped HTML) into a normalized table plus the
// log's metadata, rendered as JSON or CSV.
package main

import (
	"os"

	"github.com/hydrotools/insitulog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
