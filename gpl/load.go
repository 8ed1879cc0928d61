package gpl

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxTokenSize bounds a single whitespace-delimited token.
const maxTokenSize = 1024 * 1024

// LoadFile reads filename and parses it with the given labels.
// The file is read once and closed before returning.
func LoadFile(filename string, labels []string) (*Collection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer file.Close()

	coll, err := ParseReader(file, labels)
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", filename, err)
	}
	return coll, nil
}

// ParseReader tokenizes r on whitespace and parses the tokens as Parse does.
// Only read errors are returned; malformed tokens are dropped.
func ParseReader(r io.Reader, labels []string) (*Collection, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	p := newParser(labels)
	for scanner.Scan() {
		p.feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p.finish(), nil
}
