package main

import "github.com/pfrederiksen/teesheet-extract/internal/cli"

func main() {
	cli.Execute()
}
