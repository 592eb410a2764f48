package main

import "github.com/theirongolddev/wealthtwin/cmd"

func main() {
	cmd.Execute()
}
