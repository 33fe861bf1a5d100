package exitlib

import "os"

func main() {
	os.Exit(1)
}

// Stop exits outside package main, which is allowed
func Stop() {
	os.Exit(0)
}
