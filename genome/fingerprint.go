// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"encoding/binary"
	"hash"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/hts/sam"
)

// fingerprintEntry hashes one (name, length) pair.
func fingerprintEntry(h hash.Hash64, name string, length uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], length)
	h.Reset()
	h.Write(buf[:])
	h.Write([]byte(name))
	return h.Sum64()
}

// Fingerprint returns a digest of the build's sequence dictionary under the
// given scheme: the (name, length) pairs of every contig that has a name under
// the scheme.  The digest does not depend on contig order, so it equals
// HeaderFingerprint of any header listing exactly the same sequences.
func (b *Build[N]) Fingerprint(scheme NameScheme) uint64 {
	h := seahash.New()
	var sum uint64
	for i := range b.contigs {
		c := &b.contigs[i]
		if name := c.NameIn(scheme); name != "" {
			sum += fingerprintEntry(h, name, uint64(c.Length))
		}
	}
	return sum
}

// HeaderFingerprint returns the digest of a SAM header's sequence dictionary.
// See Build.Fingerprint.
func HeaderFingerprint(hdr *sam.Header) uint64 {
	h := seahash.New()
	var sum uint64
	for _, ref := range hdr.Refs() {
		sum += fingerprintEntry(h, ref.Name(), uint64(ref.Len()))
	}
	return sum
}
