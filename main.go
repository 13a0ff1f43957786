package main

import "github.com/jsphweid/bmsdex/cmd"

func main() {
	cmd.Execute()
}
