// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"

	"github.com/grailbio/hts/sam"
	pkgerrors "github.com/pkg/errors"
)

// SAMHeader creates a SAM header whose sequence dictionary lists the build's
// contigs, named under the given scheme, in build order.  The AS tag of each
// @SQ line is set to the build ID.  Contigs without a name under the scheme
// are omitted.
func (b *Build[N]) SAMHeader(scheme NameScheme) (*sam.Header, error) {
	refs := make([]*sam.Reference, 0, len(b.contigs))
	for i := range b.contigs {
		c := &b.contigs[i]
		name := c.NameIn(scheme)
		if name == "" {
			continue
		}
		ref, err := sam.NewReference(name, b.id.String(), "", int(c.Length), nil, nil)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "%v: contig %s", b.id, c.Name)
		}
		refs = append(refs, ref)
	}
	return sam.NewHeader(nil, refs)
}

// MismatchKind describes why a sequence dictionary entry disagrees with a
// build.
type MismatchKind int

const (
	// UnknownContig means the reference name does not resolve in the build.
	UnknownContig MismatchKind = iota
	// LengthMismatch means the reference resolves, but to a contig of a
	// different length.
	LengthMismatch
)

func (k MismatchKind) String() string {
	switch k {
	case UnknownContig:
		return "unknown contig"
	case LengthMismatch:
		return "length mismatch"
	}
	return fmt.Sprintf("MismatchKind(%d)", int(k))
}

// Mismatch is one sequence dictionary entry that disagrees with a build.
type Mismatch struct {
	Kind MismatchKind
	// Ref is the reference name as it appears in the dictionary.
	Ref string
	// RefLength is the length given by the dictionary.
	RefLength int
	// Contig is the resolved contig's Name.  Empty for UnknownContig.
	Contig string
	// ContigLength is the resolved contig's length.  Zero for UnknownContig.
	ContigLength uint64
}

func (m Mismatch) String() string {
	if m.Kind == UnknownContig {
		return fmt.Sprintf("%s: %v", m.Ref, m.Kind)
	}
	return fmt.Sprintf("%s: %v: %d in dictionary, %d in contig %s", m.Ref, m.Kind, m.RefLength, m.ContigLength, m.Contig)
}

// CheckHeader compares the sequence dictionary of h against the build.  Each
// reference must resolve with ContigByName to a contig of the same length.
// It returns the disagreeing references in header order; the result is empty
// if the header is compatible with the build.
//
// References may use any mix of naming schemes.  The build may have contigs
// that the header does not mention.
func (b *Build[N]) CheckHeader(h *sam.Header) []Mismatch {
	var mismatches []Mismatch
	for _, ref := range h.Refs() {
		c := b.ContigByName(ref.Name())
		if c == nil {
			mismatches = append(mismatches, Mismatch{Kind: UnknownContig, Ref: ref.Name(), RefLength: ref.Len()})
			continue
		}
		if uint64(c.Length) != uint64(ref.Len()) {
			mismatches = append(mismatches, Mismatch{
				Kind:         LengthMismatch,
				Ref:          ref.Name(),
				RefLength:    ref.Len(),
				Contig:       c.Name,
				ContigLength: uint64(c.Length),
			})
		}
	}
	return mismatches
}
