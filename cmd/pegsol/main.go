package main

import "github.com/mcoot/pegsolitaire-go/internal/cli"

func main() {
	cli.Execute()
}
