package main

import "github.com/Wasserpuncher/loglens/internal/cmd"

func main() {
	cmd.Execute()
}
