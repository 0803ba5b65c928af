package main

import (
	"fmt"

	"github.com/randomouscrap98/bigdata/pattern"
)

// The human readable line printed after a multi-mode run
func confirmation(mode pattern.Mode, filename string) string {
	return fmt.Sprintf("Created %s output file %s", mode, filename)
}
