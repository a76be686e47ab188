package main

import "github.com/analogrelay/go-ffi-examples/hello-world/cmd"

func main() {
	cmd.Execute()
}
