package main

import "hexsweep/cmd"

func main() {
	cmd.Execute()
}
