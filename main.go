package main

import "mkxorg/cmd"

func main() {
	cmd.Execute()
}
