// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomebuild/genome"
	pkgerrors "github.com/pkg/errors"
)

// vcfContigRE matches the ID of a VCF "##contig=<ID=chr1,length=...>" line.
var vcfContigRE = regexp.MustCompile(`^(##contig=<ID=)([^,>\s]+)([\s\S]*)$`)

type renameOpts struct {
	to genome.NameScheme
	// keepUnknown copies lines whose contig cannot be renamed.
	keepUnknown bool
}

// renamer maps contig names to the target scheme.  Thread compatible.
type renamer struct {
	b    *genome.Build[Length]
	opts renameOpts
	// cache maps input names to output names.  Inputs without a target name
	// map to "".
	cache    map[string]string
	nUnknown int
}

func newRenamer(b *genome.Build[Length], opts renameOpts) *renamer {
	return &renamer{b: b, opts: opts, cache: map[string]string{}}
}

func (r *renamer) renameContig(name string) (string, error) {
	to, ok := r.cache[name]
	if !ok {
		to, _ = r.b.Rename(name, r.opts.to)
		r.cache[name] = to
	}
	if to != "" {
		return to, nil
	}
	r.nUnknown++
	if r.opts.keepUnknown {
		return name, nil
	}
	if c := r.b.ContigByName(name); c != nil {
		return "", errors.E(errors.NotExist, fmt.Sprintf("%v: contig %s has no %v name", r.b.ID(), c.Name, r.opts.to))
	}
	return "", unknownContigError(r.b, name)
}

// renameLine renames the first column of line.  line includes its
// terminating newline, if any.
func (r *renamer) renameLine(line string) (string, error) {
	if strings.HasPrefix(line, "#") {
		m := vcfContigRE.FindStringSubmatch(line)
		if m == nil {
			return line, nil
		}
		to, err := r.renameContig(m[2])
		if err != nil {
			return "", err
		}
		return m[1] + to + m[3], nil
	}
	end := strings.IndexAny(line, "\t\r\n")
	if end < 0 {
		end = len(line)
	}
	if end == 0 {
		return line, nil
	}
	to, err := r.renameContig(line[:end])
	if err != nil {
		return "", err
	}
	return to + line[end:], nil
}

func rename(out io.Writer, in io.Reader, b *genome.Build[Length], opts renameOpts) error {
	var (
		rn = newRenamer(b, opts)
		r  = bufio.NewReaderSize(in, 64<<10)
		w  = bufio.NewWriterSize(out, 64<<10)
	)
	for nLine := 1; ; nLine++ {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			renamed, rerr := rn.renameLine(line)
			if rerr != nil {
				return pkgerrors.Wrapf(rerr, "line %d", nLine)
			}
			if _, werr := w.WriteString(renamed); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if rn.nUnknown > 0 {
		log.Printf("rename: copied %d lines with contigs that have no %v name in %v", rn.nUnknown, opts.to, b.ID())
	}
	return w.Flush()
}

func renamePath(ctx context.Context, out io.Writer, path string, b *genome.Build[Length], opts renameOpts) error {
	in, closer, err := openInput(ctx, path)
	if err != nil {
		return err
	}
	err = rename(out, in, b, opts)
	if cerr := closer(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
