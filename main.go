package main

import "github.com/bgraf/phototrack/cmd"

func main() {
	cmd.Execute()
}
