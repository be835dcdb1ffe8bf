package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadFiles lists the files of folder having one of the extensions.
func ReadFiles(folder string, supportedExtensions []string) ([]string, error) {
	allFiles, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, f := range allFiles {
		if f.IsDir() {
			continue
		}
		for _, ext := range supportedExtensions {
			if strings.HasSuffix(f.Name(), "."+ext) {
				result = append(result, filepath.Join(folder, f.Name()))
				break
			}
		}
	}
	return result, nil
}
