// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package builds

import (
	"fmt"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/genomebuild/genome"
	"github.com/grailbio/hts/sam"
)

// Identification is the result of Identify.
type Identification struct {
	// ID is the matching builtin build.
	ID genome.BuildID
	// Exact is true if the header lists exactly the build's contigs.  If
	// false, the header lists a subset of them.
	Exact bool
	// Scheme is the naming scheme used by every reference in the header.  It
	// is meaningless if Mixed is set.
	Scheme genome.NameScheme
	// Mixed is true if no single naming scheme covers all the references.
	Mixed bool
}

// headerScheme returns the first scheme under which b knows every reference
// of h.
func headerScheme(b *genome.Build[int64], h *sam.Header) (genome.NameScheme, bool) {
	for _, scheme := range genome.NameSchemes {
		ok := true
		for _, ref := range h.Refs() {
			if b.ContigByNameIn(ref.Name(), scheme) == nil {
				ok = false
				break
			}
		}
		if ok {
			return scheme, true
		}
	}
	return 0, false
}

// Identify finds the builtin build that the sequence dictionary of h was made
// from.
//
// A header listing exactly the contigs of a build under a single naming
// scheme is recognized by fingerprint.  Otherwise, the build that resolves
// every reference with matching lengths is returned.  It returns a NotExist
// error if no builtin build is compatible with the header, and an Invalid
// error if several are.
func Identify(h *sam.Header) (Identification, error) {
	if len(h.Refs()) == 0 {
		return Identification{}, errors.E(errors.NotExist, "header has no reference sequences")
	}
	fp := genome.HeaderFingerprint(h)
	for _, b := range registry {
		build := b.get()
		for _, scheme := range genome.NameSchemes {
			if build.Fingerprint(scheme) == fp {
				return Identification{ID: b.id, Exact: true, Scheme: scheme}, nil
			}
		}
	}
	var matches []Identification
	for _, b := range registry {
		build := b.get()
		mismatches := build.CheckHeader(h)
		if len(mismatches) > 0 {
			log.Debug.Printf("identify: %v: %d mismatches, first: %v", b.id, len(mismatches), mismatches[0])
			continue
		}
		id := Identification{ID: b.id}
		scheme, ok := headerScheme(build, h)
		if ok {
			id.Scheme = scheme
		} else {
			id.Mixed = true
		}
		matches = append(matches, id)
	}
	switch len(matches) {
	case 0:
		return Identification{}, errors.E(errors.NotExist, "no builtin genome build matches the header")
	case 1:
		return matches[0], nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.ID.String()
	}
	return Identification{}, errors.E(errors.Invalid,
		fmt.Sprintf("header matches several builtin genome builds: %s", strings.Join(ids, ", ")))
}
