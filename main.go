package main

import "github.com/hmc-portal2/hmc-scheduler/cmd"

func main() {
	cmd.Execute()
}
