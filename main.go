package main

import (
	"os"

	"github.com/PolarWolf314/konsole/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
