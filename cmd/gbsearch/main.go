package main

import (
	"github.com/Laisky/go-bsearch/cmd"
)

func main() {
	cmd.Execute()
}
