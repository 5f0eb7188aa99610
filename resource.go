package lessons

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ResourcePath derives a lesson's resource directory from base, the
// directory of the executable. base is cut at its last "bin" and
// "res" is appended, so ".../project/bin/" becomes ".../project/res/".
// A base without "bin" gets "res" appended as is. When app is non-empty
// it is added as a sub directory. The result ends with a separator.
func ResourcePath(base, app string) (string, error) {
	if base == "" {
		return "", ErrNoBasePath
	}
	sep := string(filepath.Separator)
	if i := strings.LastIndex(base, "bin"); i >= 0 {
		base = base[:i]
	}
	root := base + "res" + sep
	if app == "" {
		return root, nil
	}
	return root + app + sep, nil
}

// ExecutableDir returns the directory of the running binary with a
// trailing separator. Drivers without a native notion of a base path
// use it.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", WrapOp("os.Executable", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe) + string(filepath.Separator), nil
}

// basePaths caches BasePath per driver; the executable does not move
// while the process runs.
var basePaths sync.Map

// Resources returns the resource directory for cfg. cfg.ResourceDir wins
// when set; otherwise the driver's base path is used.
func Resources(drv Driver, cfg Config) (string, error) {
	if cfg.ResourceDir != "" {
		dir := cfg.ResourceDir
		if !strings.HasSuffix(dir, string(filepath.Separator)) {
			dir += string(filepath.Separator)
		}
		return dir, nil
	}
	var base string
	if v, ok := basePaths.Load(drv); ok {
		base = v.(string)
	} else {
		b, err := drv.BasePath()
		if err != nil {
			Logger().Error("resource path", "err", err)
			return "", err
		}
		basePaths.Store(drv, b)
		base = b
	}
	return ResourcePath(base, cfg.AppName)
}
