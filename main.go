package main

import "github.com/lumecli/lume/cmd"

func main() {
	cmd.Execute()
}
