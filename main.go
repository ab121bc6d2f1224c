package main

import "github.com/bl4cksku11/rto-toolkit/cmd"

func main() {
	cmd.Execute()
}
