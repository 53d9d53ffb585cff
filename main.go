package main

import (
	"demget/cmd"
)

func main() {
	cmd.Execute()
}
