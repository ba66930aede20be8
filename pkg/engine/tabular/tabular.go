// Package tabular reads and writes line-based delimited text files.
//
// The format is deliberately minimal: one record per line, fields split on a
// single delimiter, no quoting and no escaping. Fields are returned exactly as
// they appear in the file; callers decide whether to trim them.
package tabular

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDelimiter separates fields when a Dir has none configured
const DefaultDelimiter = ","

var (
	// ErrNotFound is returned when the requested file does not exist
	ErrNotFound = errors.New("file not found")
	// ErrIO is returned for any other read or write failure
	ErrIO = errors.New("i/o error")
)

// Dir is a directory of delimited files. Every name passed to it is reduced
// to its base name, so reads and writes always land inside Root no matter
// where the name originally pointed.
type Dir struct {
	Root      string
	Delimiter string
}

// Path returns the file path a name resolves to inside the directory
func (d Dir) Path(name string) string {
	return filepath.Join(d.Root, filepath.Base(name))
}

func (d Dir) delimiter() string {
	if d.Delimiter == "" {
		return DefaultDelimiter
	}
	return d.Delimiter
}

// ReadRows returns every line of the named file split into fields
func (d Dir) ReadRows(name string) ([][]string, error) {
	path := d.Path(name)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		rows = append(rows, strings.Split(line, d.delimiter()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}

	return rows, nil
}

// WriteRows replaces the named file with the given rows. The file is written
// to a temporary sibling first and renamed into place so a failed write never
// leaves a truncated file behind.
func (d Dir) WriteRows(name string, rows [][]string) error {
	path := d.Path(name)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, row := range rows {
		w.WriteString(strings.Join(row, d.delimiter()))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}

	return nil
}
