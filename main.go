package main

import "gameframe/cmd"

func main() {
	cmd.Execute()
}
