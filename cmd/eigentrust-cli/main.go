package main

import (
	cmd "github.com/nspcc-dev/eigentrust-node/cmd/eigentrust-cli/modules"
)

func main() {
	cmd.Execute()
}
