package main

import "github.com/lloydmeta/raftmeta/app/cmd"

func main() {
	cmd.Execute()
}
