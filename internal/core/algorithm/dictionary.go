package algorithm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"hashcrack/internal/core/domain"
)

// Dictionary streams a newline-delimited wordlist in file order. Lines end at
// \n, \r\n or a lone \r and may be any length. They are trimmed, blank lines
// skipped, and invalid UTF-8 bytes dropped.
type Dictionary struct {
	path       string
	file       *os.File
	lines      *lineReader
	current    string
	err        error
	totalWords int64
	totalKnown bool
}

// NewDictionary opens path and counts its words so progress can be shown
// against a known total.
func NewDictionary(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, wrapOpenError(path, err)
	}

	d := &Dictionary{path: path, file: file}
	if err := d.countTotalWords(); err != nil {
		file.Close()
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		file.Close()
		return nil, d.readError(err)
	}
	d.lines = newLineReader(file)
	return d, nil
}

// NewDictionaryReader streams words from r. The total is unknown.
func NewDictionaryReader(r io.Reader) *Dictionary {
	return &Dictionary{lines: newLineReader(r)}
}

type lineReader struct {
	r       *bufio.Reader
	pending []string
	err     error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the following line without its terminator. It reports false
// once the input is consumed or a read fails.
func (l *lineReader) next() (string, bool) {
	for len(l.pending) == 0 {
		if l.err != nil {
			return "", false
		}
		chunk, err := l.r.ReadString('\n')
		if err != nil {
			l.err = err
		}
		if chunk != "" {
			l.pending = strings.Split(strings.TrimSuffix(chunk, "\n"), "\r")
		}
	}
	line := l.pending[0]
	l.pending = l.pending[1:]
	return line, true
}

func (l *lineReader) Err() error {
	if errors.Is(l.err, io.EOF) {
		return nil
	}
	return l.err
}

func wrapOpenError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrSourceRead, path, err)
}

func (d *Dictionary) countTotalWords() error {
	lines := newLineReader(d.file)
	for {
		line, ok := lines.next()
		if !ok {
			break
		}
		if cleanWord(line) != "" {
			d.totalWords++
		}
	}
	if err := lines.Err(); err != nil {
		return d.readError(err)
	}
	d.totalKnown = true
	return nil
}

func (d *Dictionary) readError(err error) error {
	if d.path == "" {
		return fmt.Errorf("%w: %w", domain.ErrSourceRead, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrSourceRead, d.path, err)
}

func cleanWord(line string) string {
	return strings.TrimSpace(strings.ToValidUTF8(line, ""))
}

func (d *Dictionary) Next() bool {
	if d.err != nil {
		return false
	}
	for {
		line, ok := d.lines.next()
		if !ok {
			break
		}
		word := cleanWord(line)
		if word == "" {
			continue
		}
		d.current = word
		return true
	}
	if err := d.lines.Err(); err != nil {
		d.err = d.readError(err)
	}
	return false
}

func (d *Dictionary) Candidate() string {
	return d.current
}

func (d *Dictionary) Err() error {
	return d.err
}

func (d *Dictionary) Total() (int64, bool) {
	return d.totalWords, d.totalKnown
}

func (d *Dictionary) Name() domain.AttackMode {
	return domain.ModeDictionary
}

func (d *Dictionary) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}
