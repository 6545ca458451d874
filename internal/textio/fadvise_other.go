//go:build !linux

package textio

import "os"

func adviseSequential(*os.File) {}
