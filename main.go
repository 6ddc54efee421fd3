package main

import "stepgen/cmd"

func main() {
	cmd.Execute()
}
