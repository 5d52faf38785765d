package util

import (
	"os"
	"strings"
)

// WriteToFile writes the given strings to savePath, one per line,
// replacing any existing content
func WriteToFile(savePath string, content ...string) error {
	return os.WriteFile(savePath, []byte(strings.Join(content, "\n")+"\n"), 0644)
}

// AppendToFile appends the given strings to savePath, one per line,
// creating the file if needed
func AppendToFile(savePath string, content ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDir creates the directory (and parents) if it does not exist
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}
