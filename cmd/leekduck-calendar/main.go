package main

import "github.com/soniCaH/pokemon-go-leekduck/internal/cli"

func main() {
	cli.Execute()
}
