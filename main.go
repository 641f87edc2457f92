package main

import "github.com/alexiusacademia/gorwall/cmd"

func main() {
	cmd.Execute()
}
