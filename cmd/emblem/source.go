package main

import (
	"io"
	"os"

	"github.com/emblem-lang/emblem/source"
)

// readSource loads path's content, or stdin's if path is "" or "-",
// returning a source.FileName/FileContent pair ready to feed the lexer
// or parser.
func readSource(path string) (source.FileName, source.FileContent, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return source.FileName{}, source.FileContent{}, err
		}
		return source.NewFileName("<stdin>"), source.NewFileContent(string(data)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source.FileName{}, source.FileContent{}, err
	}
	return source.NewFileName(path), source.NewFileContent(string(data)), nil
}
