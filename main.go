package main

import "github.com/gaurav-prasanna/tgmarkup/cmd"

func main() {
	cmd.Execute()
}
