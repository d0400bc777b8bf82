// SPDX-License-Identifier: EPL-2.0

package chords

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ReadLab parses a chord lab file: one "start end label" segment per line,
// separated by tabs or spaces, times in seconds. Blank lines and lines
// starting with '#' are ignored. Each segment must end after it starts;
// zero-length, negative and non-finite spans are ErrMalformedLab.
func ReadLab(r io.Reader) (Timeline, error) {
	var tl Timeline

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrMalformedLab, line, len(fields))
		}

		start, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: start: %w", ErrMalformedLab, line, err)
		}
		end, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: end: %w", ErrMalformedLab, line, err)
		}
		if !(start >= 0) || !(end > start) || math.IsInf(end, 1) {
			return nil, fmt.Errorf("%w: line %d: bad span %g..%g", ErrMalformedLab, line, start, end)
		}

		tl = append(tl, Interval{Start: start, End: end, Label: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lab: %w", err)
	}

	return tl, nil
}

// WriteLab writes tl in the format read by ReadLab.
func WriteLab(w io.Writer, tl Timeline) error {
	bw := bufio.NewWriter(w)
	for _, iv := range tl {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\n",
			strconv.FormatFloat(iv.Start, 'f', -1, 64),
			strconv.FormatFloat(iv.End, 'f', -1, 64),
			iv.Label)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadLabFile opens and parses a lab file.
func ReadLabFile(path string) (Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLab(f)
}

// LabRecognizer serves chord timelines from lab files written by an external
// recogniser. With Path empty it reads the file next to the audio, with the
// extension replaced by ".lab".
type LabRecognizer struct {
	Path string
}

func (l LabRecognizer) Recognize(ctx context.Context, audioPath string) (Timeline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.Path
	if path == "" {
		path = strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".lab"
	}

	return ReadLabFile(path)
}
