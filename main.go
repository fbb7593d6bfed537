package main

import "github.com/rajatjindal/cloud-plugin/cmd"

func main() {
	cmd.Execute()
}
