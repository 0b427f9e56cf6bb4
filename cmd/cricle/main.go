package main

import "github.com/mcoot/cricle/internal/cli"

func main() {
	cli.Execute()
}
