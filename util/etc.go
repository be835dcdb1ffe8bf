package util

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/text/unicode/norm"
)

// FixUnicode composes s into NFC, so visually equal carriers give the
// same characters.
func FixUnicode(in string) string {
	return norm.NFC.String(in)
}

func CreateTempfile(data []byte) (string, error) {
	f, err := os.CreateTemp("", "hiddenmsg-")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if data != nil {
		if _, err := f.Write(data); err != nil {
			return "", err
		}
	}
	return f.Name(), nil
}

func PathToProgram(prog string) (string, error) {
	path, err := exec.LookPath(prog)
	if errors.Is(err, exec.ErrDot) {
		err = nil
	}
	return path, err
}
