// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/errors"
)

// Build is a genome build: an ID plus its contigs.  N is the integer type
// used for contig lengths.  A Build is immutable and thread safe.
type Build[N Length] struct {
	id      BuildID
	contigs []Contig[N] // sorted by Name
	// index[scheme] maps a name under the scheme to an index in contigs.
	index [numNameSchemes]map[string]int
}

// NewBuild creates a Build from the given contigs.  The contigs are copied and
// sorted by name.
//
// It returns an error if a length is negative, or if two contigs share a
// name, GenBank accession, RefSeq accession or UCSC name.  Empty names are
// ignored for this purpose.
func NewBuild[N Length](id BuildID, contigs []Contig[N]) (*Build[N], error) {
	for i := range contigs {
		if contigs[i].Name == "" {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("%v: contig #%d has no name", id, i))
		}
	}
	b := &Build[N]{
		id:      id,
		contigs: make([]Contig[N], len(contigs)),
	}
	copy(b.contigs, contigs)
	sort.SliceStable(b.contigs, func(i, j int) bool {
		return b.contigs[i].Name < b.contigs[j].Name
	})
	for s := range b.index {
		b.index[s] = make(map[string]int, len(b.contigs))
	}
	for i := range b.contigs {
		c := &b.contigs[i]
		if c.Length < 0 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("%v: contig %s has negative length %v", id, c.Name, c.Length))
		}
		for _, scheme := range NameSchemes {
			name := c.NameIn(scheme)
			if name == "" {
				continue
			}
			if j, ok := b.index[scheme][name]; ok {
				return nil, errors.E(errors.Invalid,
					fmt.Sprintf("%v: contigs %s and %s share %v name %s", id, b.contigs[j].Name, c.Name, scheme, name))
			}
			b.index[scheme][name] = i
		}
	}
	return b, nil
}

// ID returns the build's identity.
func (b *Build[N]) ID() BuildID { return b.id }

// Contigs returns all contigs, sorted by name.  The caller must not modify the
// slice.
func (b *Build[N]) Contigs() []Contig[N] { return b.contigs }

// Len returns the number of contigs.
func (b *Build[N]) Len() int { return len(b.contigs) }

// TotalLength returns the sum of contig lengths.
func (b *Build[N]) TotalLength() uint64 {
	var n uint64
	for i := range b.contigs {
		n += uint64(b.contigs[i].Length)
	}
	return n
}

// ContigByName finds a contig by trying, in order, the sequence name, the
// GenBank accession, the RefSeq accession and the UCSC name.  The match is
// exact.  It returns nil if no contig has the name.
//
// The result points into the build and must not be modified.
func (b *Build[N]) ContigByName(name string) *Contig[N] {
	if name == "" {
		return nil
	}
	for s := range b.index {
		if i, ok := b.index[s][name]; ok {
			return &b.contigs[i]
		}
	}
	return nil
}

// ContigByNameIn finds a contig using only the given naming scheme.
func (b *Build[N]) ContigByNameIn(name string, scheme NameScheme) *Contig[N] {
	if scheme < 0 || int(scheme) >= numNameSchemes {
		return nil
	}
	if i, ok := b.index[scheme][name]; ok {
		return &b.contigs[i]
	}
	return nil
}

// Rename resolves name with ContigByName and returns the contig's name under
// the given scheme.  The second value is false if the name is unknown or the
// contig has no name under the scheme.
func (b *Build[N]) Rename(name string, scheme NameScheme) (string, bool) {
	c := b.ContigByName(name)
	if c == nil {
		return "", false
	}
	to := c.NameIn(scheme)
	return to, to != ""
}

// Names returns every name ContigByName accepts, sorted.
func (b *Build[N]) Names() []string {
	var names []string
	for s := range b.index {
		for name := range b.index[s] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	// A contig may use the same string under two schemes.
	n := 0
	for i, name := range names {
		if i > 0 && name == names[n-1] {
			continue
		}
		names[n] = name
		n++
	}
	return names[:n]
}

// Equal checks if the two builds have the same ID and identical contigs.
func (b *Build[N]) Equal(o *Build[N]) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil || b.id != o.id || len(b.contigs) != len(o.contigs) {
		return false
	}
	for i := range b.contigs {
		if b.contigs[i] != o.contigs[i] {
			return false
		}
	}
	return true
}
