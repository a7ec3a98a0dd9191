// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package builds provides the commonly used human genome builds:
//
//   - GRCh37.p13 (GCF_000001405.25)
//   - GRCh38.p13 (GCF_000001405.39)
//
// The builds are compiled into the binary from NCBI assembly reports.  Other
// builds can be read with genome.ReadAssemblyReport.
package builds

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomebuild/genome"
)

//go:embed data/*_assembly_report.txt
var data embed.FS

// builtin is a build bundled with the package.  Its assembly report is
// parsed once, on first use, into int64 lengths; typed builds are derived from
// that.
type builtin struct {
	id     genome.BuildID
	report string // path in data

	once   sync.Once
	parsed *genome.Build[int64]
}

var (
	grch37p13 = &builtin{
		id:     genome.NewBuildID("GRCh37", "p13"),
		report: "data/GCF_000001405.25_GRCh37.p13_assembly_report.txt",
	}
	grch38p13 = &builtin{
		id:     genome.NewBuildID("GRCh38", "p13"),
		report: "data/GCF_000001405.39_GRCh38.p13_assembly_report.txt",
	}

	// registry lists the builtin builds in ID order.
	registry = []*builtin{grch37p13, grch38p13}
)

func (b *builtin) get() *genome.Build[int64] {
	b.once.Do(func() {
		report, err := data.ReadFile(b.report)
		if err != nil {
			log.Panicf("builtin %v: %v", b.id, err)
		}
		if b.parsed, err = genome.ParseAssemblyReport[int64](b.id, bytes.NewReader(report)); err != nil {
			log.Panicf("builtin %v: %v", b.id, err)
		}
	})
	return b.parsed
}

// typed converts the builtin build to length type N.
func typed[N genome.Length](b *builtin) *genome.Build[N] {
	src := b.get().Contigs()
	contigs := make([]genome.Contig[N], len(src))
	for i, c := range src {
		n := N(c.Length)
		if int64(n) != c.Length {
			log.Panicf("builtin %v: contig %s: length %d does not fit %T", b.id, c.Name, c.Length, n)
		}
		contigs[i] = genome.Contig[N]{
			Name:         c.Name,
			GenBank:      c.GenBank,
			RefSeq:       c.RefSeq,
			UCSC:         c.UCSC,
			Length:       n,
			Role:         c.Role,
			Molecule:     c.Molecule,
			MoleculeType: c.MoleculeType,
			Relationship: c.Relationship,
			AssemblyUnit: c.AssemblyUnit,
			Circular:     c.Circular,
		}
	}
	build, err := genome.NewBuild(b.id, contigs)
	if err != nil {
		log.Panicf("builtin %v: %v", b.id, err)
	}
	return build
}

// GRCh37P13 returns the GRCh37.p13 build.  Every call returns an equal build.
func GRCh37P13[N genome.Length]() *genome.Build[N] { return typed[N](grch37p13) }

// GRCh38P13 returns the GRCh38.p13 build.  Every call returns an equal build.
func GRCh38P13[N genome.Length]() *genome.Build[N] { return typed[N](grch38p13) }

// IDs lists the IDs of the builtin builds.
func IDs() []genome.BuildID {
	ids := make([]genome.BuildID, len(registry))
	for i, b := range registry {
		ids[i] = b.id
	}
	return ids
}

// Lookup returns the builtin build with the given ID, e.g. "GRCh38.p13".  The
// ID must match exactly.
func Lookup[N genome.Length](id string) (*genome.Build[N], error) {
	parsed, err := genome.ParseBuildID(id)
	if err != nil {
		return nil, err
	}
	for _, b := range registry {
		if b.id == parsed {
			return typed[N](b), nil
		}
	}
	return nil, errors.E(errors.NotExist, fmt.Sprintf("unknown genome build %q; builtin builds are %v", id, IDs()))
}
