package main

import (
	"os"
)

func main() {
	if err := newRootCmd(openServices).Execute(); err != nil {
		os.Exit(1)
	}
}
