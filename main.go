package main

import "model-storage/cmd"

func main() {
	cmd.Execute()
}
