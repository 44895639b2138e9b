package main

import "github.com/withobsrvr/recordctl/cmd"

func main() {
	cmd.Execute()
}
