package main

import "infinity-tools/cmd"

func main() {
	cmd.Execute()
}
