package consts

import "golang.org/x/sys/cpu"

// IsBigEndian reports whether the host stores words in the same byte order
// SHA-256 reads them, in which case a block can be loaded without swapping.
var IsBigEndian = cpu.IsBigEndian
