// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"sort"

	"github.com/antzucaro/matchr"
)

// maxSuggestDistance is the largest edit distance at which Suggest still
// considers a name similar.
const maxSuggestDistance = 3

// Suggest returns up to n names known to the build that are within a small
// edit distance of name, closest first.  Ties are broken alphabetically.  It
// is meant for error messages; ContigByName never matches inexactly.
func (b *Build[N]) Suggest(name string, n int) []string {
	if n <= 0 {
		return nil
	}
	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, known := range b.Names() {
		if d := matchr.Levenshtein(name, known); d <= maxSuggestDistance {
			candidates = append(candidates, candidate{known, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
