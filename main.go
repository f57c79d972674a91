package main

import "homeburn/cmd"

func main() {
	cmd.Execute()
}
