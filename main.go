package main

import (
	"github.com/leighmacdonald/pairhash/internal/cmd"
)

func main() {
	cmd.Execute()
}
