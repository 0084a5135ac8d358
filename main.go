package main

import (
	"github.com/pfactor/PFactor-core/cmd"
)

func main() {
	cmd.Execute()
}
