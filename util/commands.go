package util

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	TextEditor             = "vi"
	TextEditorVariableName = "HIDDENMSG_EDITOR"
)

/*
 * user-related functions: editing the configuration in place and reading
 * the log file.
 */
func EditConfig(conf string, validate func([]byte) error) error {
	te := os.Getenv(TextEditorVariableName)
	if te == "" {
		te = os.Getenv("EDITOR")
	}
	if te == "" {
		te = TextEditor
	}
	editor, err := PathToProgram(te)
	if err != nil {
		return fmt.Errorf("text editor %s not found: %w", te, err)
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	// edit a copy, so a broken configuration never replaces a valid one
	tempFile, err := CreateTempfile(data)
	if err != nil {
		return fmt.Errorf("failed to write into temporary file: %w", err)
	}
	defer os.Remove(tempFile)

	cmd := exec.Command(editor, tempFile)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("failed to edit file using %v: %w", te, err)
	}

	edited, err := os.ReadFile(tempFile)
	if err != nil {
		return fmt.Errorf("failed to read temporary file: %w", err)
	}
	if validate != nil {
		if err = validate(edited); err != nil {
			return fmt.Errorf("configuration is not saved: %w", err)
		}
	}
	return os.WriteFile(conf, edited, 0600)
}

func ReadLog(log string) error {
	data, err := os.ReadFile(log)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
