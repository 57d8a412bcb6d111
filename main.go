package main

import "github.com/communityconnect/connect/cmd"

func main() {
	cmd.Execute()
}
