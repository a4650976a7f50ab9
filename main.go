package main

import "github.com/campuslens/campuslens/cmd"

func main() {
	cmd.Execute()
}
