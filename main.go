package main

import (
	"SoundX/cmd"
)

func main() {
	cmd.Execute()
}
