package main

import "AmbientFM/cmd"

func main() {
	cmd.Execute()
}
