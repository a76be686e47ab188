package main

import "github.com/analogrelay/go-ffi-examples/ffi-bench/cmd"

func main() {
	cmd.Execute()
}
