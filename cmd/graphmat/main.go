// SPDX-License-Identifier: MIT

// Command graphmat queries and edits graphic matroids built from builder
// families or workload files.
//
//	graphmat info --family complete --n 5
//	graphmat closure --family wheel --n 5 0 1
//	graphmat has-minor -c k5.yaml --other-family complete --other-n 4
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
