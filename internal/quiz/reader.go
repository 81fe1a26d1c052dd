package quiz

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const (
	// QuitToken ends the program immediately when entered at any prompt.
	QuitToken = "q"
	// ReadyToken opens the timed answer window.
	ReadyToken = "start"
)

// LineReader reads one trimmed, lower-cased line at a time and handles
// the quit token uniformly for every prompt in the program.
type LineReader struct {
	in   *bufio.Reader
	exit func(int)
}

func NewLineReader(in *bufio.Reader) *LineReader {
	return &LineReader{in: in, exit: os.Exit}
}

// NewLineReaderWithExit lets tests intercept the quit token instead of
// terminating the process.
func NewLineReaderWithExit(in *bufio.Reader, exit func(int)) *LineReader {
	return &LineReader{in: in, exit: exit}
}

// ReadLine returns the next folded input line. The quit token never
// reaches the caller: it terminates the process on the spot.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	folded := strings.ToLower(strings.TrimSpace(line))
	if folded == QuitToken {
		r.exit(0)
		// only reachable when exit is stubbed out in tests
		return "", io.EOF
	}
	if err != nil && folded == "" {
		return "", err
	}
	return folded, nil
}
