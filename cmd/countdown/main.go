package main

import "github.com/oshokin/countdown/cmd/countdown/cmd"

func main() {
	cmd.Execute()
}
