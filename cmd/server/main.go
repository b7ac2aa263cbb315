// Command server runs the agricultural analytics API and its maintenance
// tasks: seeding, workbook export, price import and a terminal dashboard.
package main

import (
	"os"
)

// Version is set by build flags.
var Version = "dev"

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
