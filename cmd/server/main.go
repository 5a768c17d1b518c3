package main

import "github.com/venuebook/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
