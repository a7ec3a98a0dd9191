// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Command bio-genome-build answers questions about the builtin reference
  genome builds (GRCh37.p13, GRCh38.p13) and the contigs they consist of.

  Subcommands:

    builds                          list the builtin builds
    contigs [-scheme s] build       print the contigs of a build as TSV
    lookup build name...            resolve contig names in any naming scheme
    rename [-to s] build [path]     rewrite the contig column of a BED/VCF/TSV
    check build path                check a SAM/BAM/.dict/.fai/FASTA against a build
    identify path                   find the build a SAM/BAM/.dict/.fai/FASTA uses

  Naming schemes are "name" (e.g. "1"), "genbank" ("CM000663.2"), "refseq"
  ("NC_000001.11") and "ucsc" ("chr1").

  Example: bio-genome-build rename -to=ucsc GRCh38.p13 calls.bed > calls.chr.bed
*/
package main
