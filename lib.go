package lispcalc

import (
	"io"
	"io/ioutil"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/lispcalc/statik"
)

//go:generate statik -src=samples

// SampleExt is the extension of bundled sample programs.
const SampleExt = ".lisp"

// Samples returns the names of the bundled sample programs, sorted.
func Samples() ([]string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != SampleExt {
			continue
		}
		names = append(names, strings.TrimSuffix(fi.Name(), SampleExt))
	}
	sort.Strings(names)
	return names, nil
}

// OpenSample opens the source of the named sample program.
func OpenSample(name string) (io.ReadCloser, error) {
	return openSampleFile(name + SampleExt)
}

// ReadSampleFile returns the contents of a file bundled with the samples,
// such as the expected output "arith.out".
func ReadSampleFile(file string) ([]byte, error) {
	f, err := openSampleFile(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioutil.ReadAll(f)
}

func openSampleFile(file string) (http.File, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	return statikFS.Open(path.Join("/", file))
}
