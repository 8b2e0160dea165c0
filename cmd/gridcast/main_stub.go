//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of gridcast requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gridcast` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless output use ./cmd/snapshot or ./cmd/castbench.")
	os.Exit(2)
}
