package main

import (
	"hashcrack/internal/platform/cli"
)

var execCmd = cli.Execute

func main() {
	execCmd()
}
