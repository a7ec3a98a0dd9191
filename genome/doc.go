// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package genome describes reference genome builds (e.g. GRCh38.p13) and the
// contigs they consist of.
//
// A contig can be found under any of its common names: the assembly sequence
// name ("1", "MT"), its GenBank accession ("CM000663.2"), its RefSeq
// accession ("NC_000001.11"), or its UCSC-style name ("chr1").  Lookup is
// exact and case-sensitive; accession versions must match.
//
// Builds are parsed from NCBI assembly reports, e.g.
// https://ftp.ncbi.nlm.nih.gov/genomes/all/GCF/000/001/405/GCF_000001405.39_GRCh38.p13/GCF_000001405.39_GRCh38.p13_assembly_report.txt.
// Package github.com/grailbio/genomebuild/builds bundles the commonly used
// human builds.
//
// A Build is immutable once constructed and may be shared by any number of
// goroutines.
package genome
