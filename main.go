package main

import "github.com/dzjyyds666/tomless/cmd"

func main() {
	cmd.Execute()
}
