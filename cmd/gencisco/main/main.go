package main

import (
	"os"

	"github.com/netscript/gencisco/cmd/gencisco"
)

func main() {
	os.Exit(gencisco.Execute())
}
