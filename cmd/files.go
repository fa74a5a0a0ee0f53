package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lvmp/loader"
	"lvmp/lvmp"
)

// job is one source image and the file it is converted into.
type job struct {
	src string
	dst string
}

// collectJobs lists the supported images directly inside srcDir and pairs
// each with an .lvmp file of the same base name in dstDir. Images sharing a
// base name (logo.png, logo.bmp) keep their extension instead
// (logo.png.lvmp, logo.bmp.lvmp). dstDir is created if needed.
func collectJobs(srcDir, dstDir string) ([]job, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, &loader.LoadError{Path: srcDir, Err: err}
	}

	var names []string
	bases := make(map[string]int)
	for _, entry := range entries {
		if entry.IsDir() || !loader.IsSupported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
		bases[baseName(entry.Name())]++
	}

	jobs := make([]job, 0, len(names))
	owner := make(map[string]string)
	for _, name := range names {
		out := baseName(name)
		if bases[out] > 1 {
			out = name
		}
		dst := filepath.Join(dstDir, out+outputExt)
		if prev, ok := owner[dst]; ok {
			return nil, fmt.Errorf("'%s' and '%s' would both be saved as '%s'", prev, name, dst)
		}
		owner[dst] = name
		jobs = append(jobs, job{src: filepath.Join(srcDir, name), dst: dst})
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, &lvmp.SinkOpenError{Path: dstDir, Err: err}
	}
	return jobs, nil
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
