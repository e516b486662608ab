package main

import "treegen/internal/cmd"

func main() {
	cmd.Execute()
}
