package main

import (
	"boardrank/cmd"
)

func main() {
	cmd.Execute()
}
