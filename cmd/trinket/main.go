package main

import "trinket/cmd/trinket/cmd"

func main() {
	cmd.Execute()
}
