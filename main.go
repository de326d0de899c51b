package main

import "github.com/cmmoran/jsls/cmd"

func main() {
	cmd.Execute()
}
