package version

import (
	"fmt"
	"runtime"
)

// Set by the build system via -ldflags.
var (
	GitRelease    = "dev"
	GitCommit     = ""
	GitCommitDate = ""
)

// GoInfo describes the toolchain and platform this binary was built
// with.
var GoInfo = fmt.Sprintf("%s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
