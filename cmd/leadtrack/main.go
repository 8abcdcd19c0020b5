package main

import "github.com/leadtrack-dev/leadtrack/internal/cli"

func main() {
	cli.Execute()
}
