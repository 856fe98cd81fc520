package main

import "fontembed/cmd"

func main() {
	cmd.Execute()
}
