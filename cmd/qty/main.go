// Command qty formats and scales recipe quantities from the shell.
//
//	qty format 1.5 0.3333 2.75       # 1 ½, ⅓, 2 ¾
//	qty scale 2 --by 1.5             # 3
//	qty servings "Serves 4" --by 2   # Serves 8
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
