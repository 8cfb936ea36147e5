// cmd/dockersnap/main.go
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}
