package main

import "github.com/Halkcyon/transunico/internal/cli"

var version = "0.1.0"

func main() {
	cli.Execute(cli.NewVariantCommand("fraktur", cli.Options{Version: version}))
}
