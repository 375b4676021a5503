package misc

import (
	"errors"
	"fmt"
	"os"
)

// ReadFile reads the whole named file.
func ReadFile(fileName string) ([]byte, error) {
	if fileName == "" {
		return nil, errors.New("no filename supplied")
	}
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s - %s", fileName, err)
	}
	return contents, nil
}

// WriteFile creates or truncates the named file and writes contents to
// it, returning the number of bytes written.
func WriteFile(fileName string, contents []byte) (int, error) {
	if fileName == "" {
		return 0, errors.New("no filename supplied")
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, fmt.Errorf("unable to create file %s - %s", fileName, err)
	}
	bytesWritten, err := file.Write(contents)
	if err != nil {
		file.Close()
		return bytesWritten, fmt.Errorf("unable to write file %s - %s", fileName, err)
	}
	if err := file.Close(); err != nil {
		return bytesWritten, fmt.Errorf("unable to close file %s - %s", fileName, err)
	}
	return bytesWritten, nil
}
