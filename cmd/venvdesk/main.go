package main

import (
	venvdeskcmd "github.com/venvdesk/venvdesk/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	venvdeskcmd.SetVersionInfo(version, commit)
	venvdeskcmd.Execute()
}
