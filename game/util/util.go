package util

import (
	"bufio"
	"errors"
	"os"
)

// FileExists reports whether fileName can be stat'ed
func FileExists(fileName string) bool {
	_, err := os.Stat(fileName)
	return !errors.Is(err, os.ErrNotExist)
}

// ReadFirstLine returns the first line of fileName, without its newline
func ReadFirstLine(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		// False on error or EOF. Check error
		return "", scanner.Err()
	}

	return scanner.Text(), nil
}

// WriteFile replaces the content of fileName, creating it if needed
func WriteFile(fileName string, content string) error {
	return os.WriteFile(fileName, []byte(content), 0o644)
}

// OpenAppend opens fileName for appending, creating it if needed
func OpenAppend(fileName string) (*os.File, error) {
	return os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
