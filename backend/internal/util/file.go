package util

import "os"

func DoesFileExist(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

func MakeDirectoriesIfNotExist(base string, fullPath string) error {
	if !DoesFileExist(fullPath) {
		return os.MkdirAll(fullPath, 0700)
	}
	return nil
}
