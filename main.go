package main

import "esl-manager/cmd"

func main() {
	cmd.Execute()
}
