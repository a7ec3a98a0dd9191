// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

// Length is the set of integer types usable for contig lengths.
type Length interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Role is the Sequence-Role column of an assembly report.
type Role string

const (
	AssembledMolecule   Role = "assembled-molecule"
	UnlocalizedScaffold Role = "unlocalized-scaffold"
	UnplacedScaffold    Role = "unplaced-scaffold"
	AltScaffold         Role = "alt-scaffold"
	FixPatch            Role = "fix-patch"
	NovelPatch          Role = "novel-patch"
)

// Contig is one sequence of a genome build.  Contigs are comparable with ==.
//
// Name fields that the assembly does not define are empty.
type Contig[N Length] struct {
	// Name is the assembly's Sequence-Name, e.g. "1", "MT" or
	// "HSCHR1_CTG1_UNLOCALIZED".
	Name string
	// GenBank is the GenBank accession, e.g. "CM000663.2".
	GenBank string
	// RefSeq is the RefSeq accession, e.g. "NC_000001.11".
	RefSeq string
	// UCSC is the UCSC-style name, e.g. "chr1".
	UCSC string
	// Length is the sequence length in bases.
	Length N

	Role Role
	// Molecule is the Assigned-Molecule, e.g. "1" for a chr1 unlocalized
	// scaffold.
	Molecule string
	// MoleculeType is the Assigned-Molecule-Location/Type, e.g. "Chromosome"
	// or "Mitochondrion".
	MoleculeType string
	// Relationship is "=" if the GenBank and RefSeq sequences are identical,
	// "<>" otherwise.
	Relationship string
	// AssemblyUnit is e.g. "Primary Assembly" or "non-nuclear".
	AssemblyUnit string
	// Circular is set for mitochondria, chloroplasts and plasmids.
	Circular bool
}

// AltNames returns the non-empty GenBank, RefSeq and UCSC names, in that
// order.
func (c *Contig[N]) AltNames() []string {
	names := make([]string, 0, 3)
	for _, n := range [...]string{c.GenBank, c.RefSeq, c.UCSC} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// NameIn returns the contig's name under the given scheme, or "" if it has
// none.
func (c *Contig[N]) NameIn(scheme NameScheme) string {
	switch scheme {
	case SequenceName:
		return c.Name
	case GenBank:
		return c.GenBank
	case RefSeq:
		return c.RefSeq
	case UCSC:
		return c.UCSC
	}
	return ""
}

func isCircularMolecule(moleculeType string) bool {
	switch moleculeType {
	case "Mitochondrion", "Chloroplast", "Plasmid":
		return true
	}
	return false
}
