// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/genomebuild/builds"
	"github.com/grailbio/genomebuild/genome"
)

// maxSuggestions is the number of "did you mean" names printed for an
// unknown contig.
const maxSuggestions = 3

func listBuilds(out io.Writer) error {
	for _, id := range builds.IDs() {
		if _, err := fmt.Fprintln(out, id); err != nil {
			return err
		}
	}
	return nil
}

// contigHeader is the header line written by listContigs and lookup.
var contigHeader = []string{"#name", "genbank", "refseq", "ucsc", "length", "role", "molecule_type", "circular"}

func writeContigHeader(w *tsv.Writer) error {
	for _, col := range contigHeader {
		w.WriteString(col)
	}
	return w.EndLine()
}

// orNA prints missing names the way assembly reports do.
func orNA(s string) string {
	if s == "" {
		return "na"
	}
	return s
}

func writeContig(w *tsv.Writer, c *genome.Contig[Length]) error {
	w.WriteString(c.Name)
	w.WriteString(orNA(c.GenBank))
	w.WriteString(orNA(c.RefSeq))
	w.WriteString(orNA(c.UCSC))
	w.WriteInt64(c.Length)
	w.WriteString(string(c.Role))
	w.WriteString(orNA(c.MoleculeType))
	if c.Circular {
		w.WriteString("yes")
	} else {
		w.WriteString("no")
	}
	return w.EndLine()
}

type contigsOpts struct {
	// scheme, if set, prints just the names under the scheme.
	scheme *genome.NameScheme
	// assembledOnly skips scaffolds and patches.
	assembledOnly bool
}

func listContigs(out io.Writer, b *genome.Build[Length], opts contigsOpts) error {
	w := tsv.NewWriter(out)
	if opts.scheme == nil {
		if err := writeContigHeader(w); err != nil {
			return err
		}
	}
	contigs := b.Contigs()
	for i := range contigs {
		c := &contigs[i]
		if opts.assembledOnly && c.Role != genome.AssembledMolecule {
			continue
		}
		if opts.scheme != nil {
			if name := c.NameIn(*opts.scheme); name != "" {
				w.WriteString(name)
				if err := w.EndLine(); err != nil {
					return err
				}
			}
			continue
		}
		if err := writeContig(w, c); err != nil {
			return err
		}
	}
	return w.Flush()
}

func unknownContigError(b *genome.Build[Length], name string) error {
	msg := fmt.Sprintf("%v: unknown contig %q", b.ID(), name)
	if s := b.Suggest(name, maxSuggestions); len(s) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(s, ", "))
	}
	return errors.E(errors.NotExist, msg)
}

// lookup prints one TSV row per name.  It fails on the first unknown name,
// after flushing the rows for the names before it.
func lookup(out io.Writer, b *genome.Build[Length], names []string) (err error) {
	w := tsv.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()
	if err = writeContigHeader(w); err != nil {
		return
	}
	for _, name := range names {
		c := b.ContigByName(name)
		if c == nil {
			return unknownContigError(b, name)
		}
		if err = writeContig(w, c); err != nil {
			return
		}
	}
	return
}
