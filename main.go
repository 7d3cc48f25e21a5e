package main

import "solview/cmd"

func main() {
	cmd.Execute()
}
