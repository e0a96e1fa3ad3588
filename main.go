package main

import (
	"github.com/wkalt/rosgen/cmd"
)

func main() {
	cmd.Execute()
}
