package main

import "github.com/notargets/gobdf/cmd"

func main() {
	cmd.Execute()
}
