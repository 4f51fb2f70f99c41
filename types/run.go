package types

import (
	"fmt"
	"os"
)

// RunConfig identifies one solver configuration under test. Color and LineStyle are only used
// when plotting.
type RunConfig struct {
	Name      string
	OutputDir string
	Color     string
	LineStyle string
}

// Present reports whether the run produced an output directory. A missing directory means the
// run was not executed and is not an error.
func (rc RunConfig) Present() (ok bool, err error) {
	var fi os.FileInfo
	if fi, err = os.Stat(rc.OutputDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("run %q: output path %s is not a directory", rc.Name, rc.OutputDir)
	}
	return true, nil
}
