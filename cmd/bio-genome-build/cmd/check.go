// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomebuild/builds"
	"github.com/grailbio/genomebuild/encoding/faidx"
	"github.com/grailbio/genomebuild/genome"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/klauspost/compress/gzip"
	pkgerrors "github.com/pkg/errors"
)

// openInput opens path for reading, decompressing .gz files.  The returned
// function closes the file.
func openInput(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error { return in.Close(ctx) }
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			closer() // nolint: errcheck
			return nil, nil, pkgerrors.Wrapf(err, "%s: open gzip", path)
		}
		reader = gz
		closer = func() error {
			err := gz.Close()
			if cerr := in.Close(ctx); cerr != nil && err == nil {
				err = cerr
			}
			return err
		}
	}
	return reader, closer, nil
}

// inputKind is the file format readHeader expects at a path.
type inputKind int

const (
	samInput inputKind = iota // SAM text or Picard .dict
	bamInput
	faiInput
	fastaInput
)

func guessInputKind(path string) inputKind {
	p := strings.TrimSuffix(path, ".gz")
	switch {
	case strings.HasSuffix(p, ".bam"):
		return bamInput
	case strings.HasSuffix(p, ".fai"):
		return faiInput
	case strings.HasSuffix(p, ".fa"), strings.HasSuffix(p, ".fasta"), strings.HasSuffix(p, ".fna"):
		return fastaInput
	}
	return samInput
}

// readHeader extracts the sequence dictionary from a SAM, BAM, .dict, .fai
// or FASTA file.
func readHeader(ctx context.Context, path string) (h *sam.Header, err error) {
	kind := guessInputKind(path)
	var (
		in     io.Reader
		closer func() error
	)
	if kind == bamInput {
		// BGZF is handled by the BAM reader.
		var f file.File
		if f, err = file.Open(ctx, path); err != nil {
			return nil, err
		}
		in, closer = f.Reader(ctx), func() error { return f.Close(ctx) }
	} else if in, closer, err = openInput(ctx, path); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	switch kind {
	case bamInput:
		r, err := bam.NewReader(in, 1)
		if err != nil {
			return nil, pkgerrors.Wrap(err, path)
		}
		h = r.Header()
		if err := r.Close(); err != nil {
			return nil, pkgerrors.Wrap(err, path)
		}
		return h, nil
	case faiInput, fastaInput:
		var entries []faidx.Entry
		if kind == faiInput {
			entries, err = faidx.Read(in)
		} else {
			entries, err = faidx.Generate(in)
		}
		if err != nil {
			return nil, pkgerrors.Wrap(err, path)
		}
		return faidx.SAMHeader(entries)
	default:
		r, err := sam.NewReader(in)
		if err != nil {
			return nil, pkgerrors.Wrap(err, path)
		}
		return r.Header(), nil
	}
}

func check(ctx context.Context, out io.Writer, b *genome.Build[Length], path string) error {
	h, err := readHeader(ctx, path)
	if err != nil {
		return err
	}
	mismatches := b.CheckHeader(h)
	for _, m := range mismatches {
		if _, err := fmt.Fprintln(out, m); err != nil {
			return err
		}
	}
	if len(mismatches) > 0 {
		return errors.E(errors.Invalid,
			fmt.Sprintf("%s: %d of %d sequences do not match %v", path, len(mismatches), len(h.Refs()), b.ID()))
	}
	log.Debug.Printf("%s: %d sequences match %v", path, len(h.Refs()), b.ID())
	_, err = fmt.Fprintf(out, "%s: all %d sequences match %v\n", path, len(h.Refs()), b.ID())
	return err
}

func identify(ctx context.Context, out io.Writer, path string) error {
	h, err := readHeader(ctx, path)
	if err != nil {
		return err
	}
	id, err := builds.Identify(h)
	if err != nil {
		return pkgerrors.Wrap(err, path)
	}
	scheme, match := "mixed", "subset"
	if !id.Mixed {
		scheme = id.Scheme.String()
	}
	if id.Exact {
		match = "exact"
	}
	_, err = fmt.Fprintf(out, "%v\t%s\t%s\n", id.ID, scheme, match)
	return err
}
