// Package input reads a bar count and bar heights from a text stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/raintrap/trap"
)

const (
	countPrompt   = "Enter the number of bars: "
	heightsPrompt = "Enter the heights of the bars:\n"

	// initialCap bounds the up-front allocation; the count is untrusted.
	initialCap = 1 << 16
	// MaxPaddedBars is the most zero bars permissive mode will add after EOF.
	MaxPaddedBars = 1 << 20
)

var (
	// ErrInvalidInput is wrapped by every error Read and ParseHeights return.
	ErrInvalidInput = errors.New("input: invalid input")
	// ErrBadCount indicates a missing, non-integer or negative bar count.
	ErrBadCount = errors.New("input: bar count must be a non-negative integer")
	// ErrShortInput indicates the stream ended before n heights were read.
	ErrShortInput = errors.New("input: fewer heights than the bar count")
	// ErrNotInteger indicates a height token that is not an integer.
	ErrNotInteger = errors.New("input: height is not an integer")
)

// Options controls how Read treats the stream.
type Options struct {
	// Prompt receives the interactive prompts; nil disables them.
	Prompt io.Writer
	// Permissive accepts negative heights and pads up to MaxPaddedBars
	// missing ones with 0.
	Permissive bool
}

// invalid wraps err so that it matches both ErrInvalidInput and err itself.
func invalid(format string, err error, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidInput, fmt.Sprintf(format, args...), err)
}

// Read consumes whitespace-separated tokens from r: a count n followed by
// n heights. Tokens after the n-th height are ignored.
func Read(r io.Reader, opts Options) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	prompt(opts.Prompt, countPrompt)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read bar count: %w", err)
		}
		return nil, invalid("no bar count", ErrBadCount)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, invalid("count %q", ErrBadCount, sc.Text())
	}

	prompt(opts.Prompt, heightsPrompt)
	height := make([]int, 0, min(n, initialCap))
	for len(height) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read height %d: %w", len(height), err)
			}
			break
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, invalid("height %d %q", ErrNotInteger, len(height), sc.Text())
		}
		height = append(height, v)
	}

	if missing := n - len(height); missing > 0 {
		if !opts.Permissive || missing > MaxPaddedBars {
			return nil, invalid("got %d of %d heights", ErrShortInput, len(height), n)
		}
		// missing bars default to zero height
		height = append(height, make([]int, missing)...)
	}

	if !opts.Permissive {
		if err := trap.Validate(height); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return height, nil
}

// ParseHeights converts already-split height values, e.g. from a flag.
func ParseHeights(fields []string, permissive bool) ([]int, error) {
	height := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, invalid("height %d %q", ErrNotInteger, i, f)
		}
		height[i] = v
	}
	if !permissive {
		if err := trap.Validate(height); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	return height, nil
}

func prompt(w io.Writer, msg string) {
	if w != nil {
		fmt.Fprint(w, msg)
	}
}
