package main

import "github.com/notargets/shocktube/cmd"

func main() {
	cmd.Execute()
}
