// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package genome

import (
	"regexp"

	"github.com/grailbio/base/errors"
)

// BuildID identifies a genome build: a major assembly name plus an optional
// patch label.  BuildIDs are comparable with ==.
type BuildID struct {
	major string
	patch string
}

// patchRE matches the patch suffix of a build name, e.g. ".p13" in
// "GRCh38.p13".
var patchRE = regexp.MustCompile(`^(.+)\.(p\d+)$`)

// NewBuildID creates a BuildID. An empty patch means "no patch".
func NewBuildID(major, patch string) BuildID {
	return BuildID{major: major, patch: patch}
}

// ParseBuildID parses IDs such as "GRCh38.p13" or "GRCh38".  A trailing
// ".p<digits>" is taken as the patch label; any other string is the major
// assembly name as a whole.
func ParseBuildID(s string) (BuildID, error) {
	if s == "" {
		return BuildID{}, errors.E(errors.Invalid, "empty genome build ID")
	}
	if m := patchRE.FindStringSubmatch(s); m != nil {
		return BuildID{major: m[1], patch: m[2]}, nil
	}
	return BuildID{major: s}, nil
}

// MajorAssembly returns the assembly name, e.g. "GRCh38".
func (id BuildID) MajorAssembly() string { return id.major }

// Patch returns the patch label, e.g. "p13". The second value is false if the
// ID carries no patch.
func (id BuildID) Patch() (string, bool) { return id.patch, id.patch != "" }

// String returns "GRCh38.p13", or just "GRCh38" when there is no patch.
func (id BuildID) String() string {
	if id.patch == "" {
		return id.major
	}
	return id.major + "." + id.patch
}
