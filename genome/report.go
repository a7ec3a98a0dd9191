// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
	pkgerrors "github.com/pkg/errors"
)

// notAvailable is how assembly reports spell a missing value.
const notAvailable = "na"

// reportRow is one sequence line of an NCBI assembly report.  Fields are
// listed in column order.
type reportRow struct {
	SequenceName     string
	SequenceRole     string
	AssignedMolecule string
	MoleculeType     string // Assigned-Molecule-Location/Type
	GenBank          string
	Relationship     string
	RefSeq           string
	AssemblyUnit     string
	Length           string
	UCSC             string
}

func orEmpty(s string) string {
	if s == notAvailable {
		return ""
	}
	return s
}

// toLength converts v to N. The second value is false if v is negative or
// does not fit N.
func toLength[N Length](v int64) (N, bool) {
	n := N(v)
	return n, v >= 0 && int64(n) == v
}

// ParseAssemblyReport reads an NCBI assembly report
// (*_assembly_report.txt) into a Build.
//
// Lines starting with '#' are ignored.  Every other line must have the ten
// tab-separated columns
//
//	Sequence-Name, Sequence-Role, Assigned-Molecule,
//	Assigned-Molecule-Location/Type, GenBank-Accn, Relationship,
//	RefSeq-Accn, Assembly-Unit, Sequence-Length, UCSC-style-name
//
// A value of "na" in a name column means the contig has no name under that
// scheme.
func ParseAssemblyReport[N Length](id BuildID, in io.Reader) (*Build[N], error) {
	r := tsv.NewReader(in)
	r.Comment = '#'
	r.LazyQuotes = true

	var (
		contigs []Contig[N]
		row     reportRow
	)
	for nRow := 0; ; nRow++ {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, pkgerrors.Wrapf(err, "%v: assembly report row %d", id, nRow)
		}
		if row.SequenceName == "" {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("%v: assembly report row %d: empty Sequence-Name", id, nRow))
		}
		v, err := strconv.ParseInt(row.Length, 10, 64)
		if err != nil {
			return nil, errors.E(errors.Invalid, err,
				fmt.Sprintf("%v: assembly report row %d (%s): cannot parse Sequence-Length %q", id, nRow, row.SequenceName, row.Length))
		}
		length, ok := toLength[N](v)
		if !ok {
			return nil, errors.E(errors.Invalid,
				fmt.Sprintf("%v: assembly report row %d (%s): length %d out of range for %T", id, nRow, row.SequenceName, v, length))
		}
		contigs = append(contigs, Contig[N]{
			Name:         row.SequenceName,
			GenBank:      orEmpty(row.GenBank),
			RefSeq:       orEmpty(row.RefSeq),
			UCSC:         orEmpty(row.UCSC),
			Length:       length,
			Role:         Role(row.SequenceRole),
			Molecule:     orEmpty(row.AssignedMolecule),
			MoleculeType: orEmpty(row.MoleculeType),
			Relationship: row.Relationship,
			AssemblyUnit: row.AssemblyUnit,
			Circular:     isCircularMolecule(row.MoleculeType),
		})
	}
	log.Debug.Printf("%v: read %d contigs from assembly report", id, len(contigs))
	return NewBuild(id, contigs)
}

// ReadAssemblyReport reads the assembly report at path, which may be any
// path understood by grailbio/base/file.  Files ending in .gz are
// decompressed.
func ReadAssemblyReport[N Length](ctx context.Context, id BuildID, path string) (b *Build[N], err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "%s: open gzip", path)
		}
		defer gz.Close() // nolint: errcheck
		reader = gz
	}
	if b, err = ParseAssemblyReport[N](id, reader); err != nil {
		return nil, pkgerrors.Wrap(err, path)
	}
	return b, nil
}
