package main

import "github.com/finopsforge/azcm/cmd"

func main() {
	cmd.Execute()
}
