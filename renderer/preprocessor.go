package renderer

import (
	"os"
	"path/filepath"
	"regexp"
)

var ppIncludeRe = regexp.MustCompile(`(?im)^#pragma\s+use\s+"([^"]+)"$`)

type Source interface {
	Contents() ([]byte, error)
}

type SourceBuf string

func (s SourceBuf) Contents() ([]byte, error) {
	return []byte(s), nil
}

type SourceFile struct {
	Filename string
}

// SourceFiles converts a list of files to the Source interface.
func SourceFiles(files ...SourceFile) []Source {
	sources := make([]Source, len(files))
	for i, f := range files {
		sources[i] = f
	}
	return sources
}

// Includes recursively resolves dependencies in the specified file.
//
// The argument file is returned included in the returned list of files.
func Includes(filenames ...string) ([]SourceFile, error) {
	return processRecursive(filenames, nil, []SourceFile{})
}

func (s SourceFile) Contents() ([]byte, error) {
	return os.ReadFile(s.Filename)
}

func processRecursive(filenames []string, parents, sources []SourceFile) ([]SourceFile, error) {
	for _, filename := range filenames {
		absFilename, err := filepath.Abs(filename)
		if err != nil {
			return nil, err
		}
		currentFile := SourceFile{Filename: absFilename}
		shaderSource, err := currentFile.Contents()
		if err != nil {
			return nil, err
		}

		// The recursion check needs the current file and the files including
		// it, but those are only appended to the list after everything they
		// include.
		chain := append(append([]SourceFile{}, parents...), currentFile)
		checkset := append(append([]SourceFile{}, sources...), chain...)

		includeMatches := ppIncludeRe.FindAllSubmatch(shaderSource, -1)
		includes := make([]string, 0, len(includeMatches))
	outer:
		for _, submatch := range includeMatches {
			includedFile := string(submatch[1])
			if !filepath.IsAbs(includedFile) {
				includedFile = filepath.Join(filepath.Dir(absFilename), includedFile)
			} else {
				includedFile = filepath.Clean(includedFile)
			}

			// Stop infinite recursion on files that were already seen.
			for _, inc := range checkset {
				if inc.Filename == includedFile {
					continue outer
				}
			}
			includes = append(includes, includedFile)
		}

		sources, err = processRecursive(includes, chain, sources)
		if err != nil {
			return nil, err
		}
		sources = append(sources, currentFile)
	}

	return sources, nil
}
