package main

import "github.com/mabhi256/jserial/cmd"

func main() {
	cmd.Execute()
}
