package main

import "github.com/semiviral/algosh/cmd"

func main() {
	cmd.Execute()
}
