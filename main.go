package main

import "paycheck-engine/cmd"

func main() {
	cmd.Execute()
}
