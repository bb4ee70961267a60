package main

import "hvac-matcher/cmd"

func main() {
	cmd.Execute()
}
