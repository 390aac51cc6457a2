// Package ioformat reads and writes the tab-separated training and
// segmentation formats named in spec §6. It is intentionally minimal:
// richer tabular formats, annotation files, and evaluation utilities
// are explicitly out of scope for the core engine.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TrainingRecord is one line of training input: a compound, its
// corpus count, and an optional initial split given as atom-index
// boundaries (spec §6: "(compound, count, initialSplitLocs)").
type TrainingRecord struct {
	Compound     string
	Count        int
	InitialSplit []int
}

// ReadTrainingData parses "count\tcompound[\tseg1 seg2 ...]" lines. A
// present third column is split on whitespace and converted to
// cumulative atom-index boundaries, mirroring how a pre-segmented
// corpus would be loaded via parts_to_splitlocs.
func ReadTrainingData(r io.Reader) ([]TrainingRecord, error) {
	scanner := bufio.NewScanner(r)
	var out []TrainingRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("ioformat: line %d: expected at least count\\tcompound, got %q", lineNum, line)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat: line %d: invalid count %q: %w", lineNum, fields[0], err)
		}
		rec := TrainingRecord{Compound: fields[1], Count: count}
		if len(fields) == 3 && fields[2] != "" {
			segs := strings.Fields(fields[2])
			cum := 0
			for _, seg := range segs[:len(segs)-1] {
				cum += len([]rune(seg))
				rec.InitialSplit = append(rec.InitialSplit, cum)
			}
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}
	return out, nil
}

// Segmentation is one compound's final analysis, ready for
// WriteSegmentations.
type Segmentation struct {
	Count    int
	Compound string
	Segments []string
}

// WriteSegmentations writes each segmentation as
// "count\t<compound>\t<seg1> + <seg2> + ..." (spec §6).
func WriteSegmentations(w io.Writer, segs []Segmentation) error {
	bw := bufio.NewWriter(w)
	for _, s := range segs {
		if _, err := fmt.Fprintf(bw, "%d\t%s\t%s\n", s.Count, s.Compound, strings.Join(s.Segments, " + ")); err != nil {
			return fmt.Errorf("ioformat: %w", err)
		}
	}
	return bw.Flush()
}
