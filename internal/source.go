package internal

import (
	"os"
	"strings"
)

// SourceCode stores the content of a source code file as lines.
type SourceCode struct {
	Lines []string
}

func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
