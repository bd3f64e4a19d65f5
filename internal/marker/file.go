package marker

import (
	"fmt"
	"os"
)

// FindInFile reads filePath and returns its markers with FilePath set.
func FindInFile(filePath string) ([]Marker, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	markers := Find(string(content))
	for i := range markers {
		markers[i].FilePath = filePath
	}
	return markers, nil
}

// FindInFiles processes multiple files and returns all markers in file order.
// It stops at the first file that cannot be read.
func FindInFiles(filePaths []string) ([]Marker, error) {
	var all []Marker
	for _, path := range filePaths {
		markers, err := FindInFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, markers...)
	}
	return all, nil
}
