// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
)

// NameScheme is one of the naming conventions a contig can be referred to by.
// The declaration order is the order in which Build.ContigByName tries them.
type NameScheme int

const (
	// SequenceName is the assembly's own name, e.g. "1" or "MT".
	SequenceName NameScheme = iota
	// GenBank accession, e.g. "CM000663.2".
	GenBank
	// RefSeq accession, e.g. "NC_000001.11".
	RefSeq
	// UCSC-style name, e.g. "chr1".
	UCSC

	numNameSchemes = iota
)

// NameSchemes lists all schemes in lookup order.
var NameSchemes = [numNameSchemes]NameScheme{SequenceName, GenBank, RefSeq, UCSC}

var nameSchemeNames = [numNameSchemes]string{"name", "genbank", "refseq", "ucsc"}

// String returns the lowercase scheme name accepted by ParseNameScheme.
func (s NameScheme) String() string {
	if s < 0 || int(s) >= numNameSchemes {
		return "invalid"
	}
	return nameSchemeNames[s]
}

// ParseNameScheme parses a scheme name, case-insensitively.  Besides the
// values returned by String, "sequence-name" and "assembly" mean
// SequenceName.
func ParseNameScheme(s string) (NameScheme, error) {
	switch strings.ToLower(s) {
	case "name", "sequence-name", "assembly":
		return SequenceName, nil
	case "genbank":
		return GenBank, nil
	case "refseq":
		return RefSeq, nil
	case "ucsc":
		return UCSC, nil
	}
	return 0, errors.E(errors.Invalid, fmt.Sprintf("unknown contig naming scheme %q", s))
}
