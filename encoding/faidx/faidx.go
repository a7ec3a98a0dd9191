// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package faidx reads and generates samtools FASTA indexes (*.fai).  See
// http://www.htslib.org/doc/faidx.html.  An index line looks like
//
//	chr1	248956422	112	70	71
//
// i.e., sequence name, length, byte offset of the first base, bases per line
// and bytes per line.
package faidx

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/sam"
	pkgerrors "github.com/pkg/errors"
)

// Entry is one line of a FASTA index.
type Entry struct {
	Name      string
	Length    int64
	Offset    int64
	LineBases int64
	LineWidth int64
}

// Read parses a FASTA index.
func Read(in io.Reader) ([]Entry, error) {
	r := tsv.NewReader(in)
	var (
		entries []Entry
		e       Entry
	)
	for {
		if err := r.Read(&e); err != nil {
			if err == io.EOF {
				break
			}
			return nil, pkgerrors.Wrapf(err, "fai entry %d", len(entries))
		}
		if e.Name == "" || e.Length < 0 {
			return nil, errors.E(errors.Invalid, "malformed fai entry", e.Name)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Write writes entries in .fai format.
func Write(out io.Writer, entries []Entry) error {
	w := tsv.NewWriter(out)
	for _, e := range entries {
		w.WriteString(e.Name)
		w.WriteInt64(e.Length)
		w.WriteInt64(e.Offset)
		w.WriteInt64(e.LineBases)
		w.WriteInt64(e.LineWidth)
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Generate computes the index of a FASTA file.  The sequence name is the text
// after '>' up to the first whitespace.
func Generate(in io.Reader) ([]Entry, error) {
	var (
		r       = bufio.NewReader(in)
		entries []Entry
		cur     *Entry
		cumByte int64
	)
	for {
		fullLine, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		eof := err == io.EOF
		cumByte += int64(len(fullLine))
		line := bytes.TrimRight(fullLine, "\r\n")
		switch {
		case len(line) == 0:
		case line[0] == '>':
			name := string(line[1:])
			if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
				name = name[:i]
			}
			if name == "" {
				return nil, errors.E(errors.Invalid, "FASTA sequence with an empty name")
			}
			entries = append(entries, Entry{Name: name, Offset: cumByte})
			cur = &entries[len(entries)-1]
		case cur == nil:
			return nil, errors.E(errors.Invalid, "malformed FASTA file: bases before the first '>' line")
		default:
			if cur.LineWidth == 0 {
				cur.LineWidth = int64(len(fullLine))
				cur.LineBases = int64(len(line))
			}
			cur.Length += int64(len(line))
		}
		if eof {
			break
		}
	}
	if cumByte == 0 {
		return nil, errors.E(errors.Invalid, "empty FASTA file")
	}
	return entries, nil
}

// SAMHeader creates a SAM header with one reference per entry, in index
// order.
func SAMHeader(entries []Entry) (*sam.Header, error) {
	refs := make([]*sam.Reference, len(entries))
	for i, e := range entries {
		ref, err := sam.NewReference(e.Name, "", "", int(e.Length), nil, nil)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "fai entry %s", e.Name)
		}
		refs[i] = ref
	}
	return sam.NewHeader(nil, refs)
}
