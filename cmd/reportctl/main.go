package main

import (
	"os"

	"github.com/Ragavendra192/barani-report-system/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
