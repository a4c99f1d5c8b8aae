package main

import "github.com/iksnae/sessionsync/cmd"

func main() {
	cmd.Execute()
}
