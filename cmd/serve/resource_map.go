package serve

import (
	"path/filepath"
)

// resourceMap resolves the names used in URLs to files on disk.
type resourceMap struct {
	byName map[string]string
}

func newResourceMap() *resourceMap {
	return &resourceMap{
		byName: make(map[string]string),
	}
}

func (r *resourceMap) Add(name, srcPath string) {
	var err error
	srcPath, err = filepath.Abs(srcPath)
	if err != nil {
		panic(err)
	}

	r.byName[name] = srcPath
}

func (r *resourceMap) Path(name string) (string, bool) {
	p, ok := r.byName[name]
	return p, ok
}
