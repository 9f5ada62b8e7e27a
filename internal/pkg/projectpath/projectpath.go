package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the root directory of the project, resolved relative to this
	// file so that .env loading works no matter the working directory.
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
