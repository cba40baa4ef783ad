package main

import "h2_simulator/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
