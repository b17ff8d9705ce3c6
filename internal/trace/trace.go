// Package trace tokenizes the simulator's input format: one reference per
// line, whitespace-separated operation byte ('r' or 'w') and a 0x-prefixed
// hexadecimal 32-bit address. Tokenization is trivial line-oriented glue —
// this is a thin bufio.Scanner wrapper, not a place to reach for a
// third-party parser.
package trace

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iradirad2/cachesim/internal/cache"
	"github.com/iradirad2/cachesim/internal/cacheerr"
)

// Reader reads references from a trace file, one Next call per line.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
	line    int
}

// Open opens path for reading. The caller must Close the returned Reader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &cacheerr.TraceError{Reason: err.Error()}
	}
	return &Reader{file: f, scanner: bufio.NewScanner(f)}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Next reads the next reference. ok is false once the file is exhausted;
// any malformed or blank line is reported as a *cacheerr.TraceError with
// its 1-based line number.
func (r *Reader) Next() (op cache.Op, addr uint32, ok bool, err error) {
	if !r.scanner.Scan() {
		if scanErr := r.scanner.Err(); scanErr != nil {
			return 0, 0, false, &cacheerr.TraceError{Line: r.line + 1, Reason: scanErr.Error()}
		}
		return 0, 0, false, nil
	}
	r.line++

	fields := strings.Fields(r.scanner.Text())
	if len(fields) != 2 {
		return 0, 0, false, &cacheerr.TraceError{Line: r.line, Reason: "Command Format error"}
	}

	opToken, addrToken := fields[0], fields[1]
	if len(opToken) != 1 || (opToken[0] != 'r' && opToken[0] != 'w') {
		return 0, 0, false, &cacheerr.TraceError{Line: r.line, Reason: "Command Format error"}
	}

	if !strings.HasPrefix(addrToken, "0x") && !strings.HasPrefix(addrToken, "0X") {
		return 0, 0, false, &cacheerr.TraceError{Line: r.line, Reason: "Command Format error"}
	}
	value, parseErr := strconv.ParseUint(addrToken[2:], 16, 32)
	if parseErr != nil {
		return 0, 0, false, &cacheerr.TraceError{
			Line:   r.line,
			Reason: fmt.Sprintf("Command Format error: %v", parseErr),
		}
	}

	return cache.Op(opToken[0]), uint32(value), true, nil
}
