package main

import "github.com/Tiliavir/dial/cmd"

func main() {
	cmd.Execute()
}
