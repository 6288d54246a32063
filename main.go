package main

import "github.com/lmstream/lmstream/cmd"

func main() {
	cmd.Execute()
}
