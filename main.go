package main

import "github.com/vispubdata/affilclean/cmd"

func main() {
	cmd.Execute()
}
