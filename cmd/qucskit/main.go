package main

import "qucskit/cmd/qucskit/cmd"

func main() {
	cmd.Execute()
}
