package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor picks the editor from config, then $EDITOR, then $VISUAL,
// falling back to vi.
func ResolveEditor(configEditor string) string {
	for _, ed := range []string{configEditor, os.Getenv("EDITOR"), os.Getenv("VISUAL")} {
		if ed != "" {
			return ed
		}
	}
	return "vi"
}

// Edit opens initial in the editor and returns what was saved. changed is
// false when the result is blank or identical to initial.
func Edit(editorCmd string, initial string) (content string, changed bool, err error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "diary-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", false, fmt.Errorf("closing temp file: %w", err)
	}

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	result := string(data)
	switch {
	case strings.TrimSpace(result) == "":
		return "", false, nil
	case strings.TrimSpace(result) == strings.TrimSpace(initial):
		return initial, false, nil
	}
	return result, true, nil
}
