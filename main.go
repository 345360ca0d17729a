package main

import "github.com/papapumpkin/perihelion/cmd"

func main() {
	cmd.Execute()
}
