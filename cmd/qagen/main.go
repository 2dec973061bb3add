package main

import "github.com/dgallion1/qagen/internal/cli"

func main() {
	cli.Execute()
}
