package textio

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"math"
	"os"

	"golang.org/x/text/transform"

	"textstat/internal/textutil"
)

// Options controls how a text source is decoded and split.
type Options struct {
	Encoding string
	// MaxLineBytes caps a single line; zero means no limit.
	MaxLineBytes int
	NormalizeNFC bool
}

const initialLineBuffer = 64 * 1024

// Reader streams the lines of one text source.
type Reader struct {
	path      string
	file      *os.File
	scanner   *bufio.Scanner
	normalize bool
	lines     int
	err       error
}

// Open prepares path for line-by-line reading. An unknown encoding is
// reported as a plain error; filesystem failures are *IOFailure.
func Open(path string, opts Options) (*Reader, error) {
	decoder, err := LookupDecoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &IOFailure{Op: OpOpen, Path: path, Err: err}
	}
	adviseSequential(file)

	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = math.MaxInt
	}
	scanner := bufio.NewScanner(transform.NewReader(file, decoder))
	scanner.Buffer(make([]byte, 0, min(initialLineBuffer, maxLine)), maxLine)
	scanner.Split(ScanLines)

	return &Reader{
		path:      path,
		file:      file,
		scanner:   scanner,
		normalize: opts.NormalizeNFC,
	}, nil
}

// Path returns the path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Lines yields each line without its terminator. After the sequence ends,
// Err reports whether it stopped because of a read failure.
func (r *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for r.scanner.Scan() {
			r.lines++
			line := r.scanner.Text()
			if r.normalize {
				line = textutil.Normalize(line)
			}
			if !yield(line) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			r.err = &IOFailure{Op: OpRead, Path: r.path, Err: err}
		}
	}
}

// LineCount returns the number of lines yielded so far.
func (r *Reader) LineCount() int {
	return r.lines
}

// Err returns the read failure that ended Lines, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

// ReadLines reads the whole source at path. No lines are returned on failure.
func ReadLines(path string, opts Options) ([]string, error) {
	reader, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var lines []string
	for line := range reader.Lines() {
		lines = append(lines, line)
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ScanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n", or a lone
// "\r". The terminator is not part of the returned token.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

var _ io.Closer = (*Reader)(nil)
