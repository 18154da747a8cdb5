package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads the text grid format: one line per row, whitespace-separated
// integers naming terrain indices. Short rows are padded with Wall and
// out-of-range integers become Wall. A blank line is a row of Wall; blank
// lines after the last non-blank row are ignored.
// A token that is not an integer yields ErrParse with its line and column.
// The offending token itself is not echoed.
func Load(r io.Reader) (*Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line, blank := 0, 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			blank++
			continue
		}
		// pending blank lines are interior: nil rows are padded to Wall by New
		for ; blank > 0; blank-- {
			rows = append(rows, nil)
		}
		row := make([]int, 0, len(fields))
		for col, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: not an integer", ErrParse, line, col+1)
			}
			row = append(row, v) // out-of-range values are normalized by New
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	return New(rows)
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Encode writes g in the format accepted by Load.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		for x, t := range row {
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(int(t))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
