// Command healthtrack inspects and maintains a healthtrack patient database.
package main

import (
	"os"

	"github.com/mesh-intelligence/healthtrack/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
