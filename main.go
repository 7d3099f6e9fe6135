package main

import "github.com/ahogen/cppcheck-codequality/cmd"

func main() {
	cmd.Execute()
}
