// Package main is the entry point for the stg CLI.
package main

import "github.com/yksanjo/smart-test-generator/cmd"

func main() {
	cmd.Execute()
}
