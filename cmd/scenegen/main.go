// scenegen is a CLI utility for bulk-editing line-oriented scene files.
package main

import (
	"os"

	"github.com/Faultbox/scenegen/cmd/scenegen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
