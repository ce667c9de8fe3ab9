package main

import "github.com/gicbank/gicbank/cmd"

func main() {
	cmd.Execute()
}
