// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/genomebuild/builds"
	"github.com/grailbio/genomebuild/genome"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"v.io/x/lib/cmdline"
)

func grch38(t *testing.T) *genome.Build[Length] {
	b, err := lookupBuild("GRCh38.p13")
	require.NoError(t, err)
	return b
}

func TestListBuilds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listBuilds(&buf))
	assert.Equal(t, "GRCh37.p13\nGRCh38.p13\n", buf.String())
}

func TestListContigs(t *testing.T) {
	b := grch38(t)
	var buf bytes.Buffer
	require.NoError(t, listContigs(&buf, b, contigsOpts{}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "#name\tgenbank\trefseq\tucsc\tlength\trole\tmolecule_type\tcircular", lines[0])
	assert.Equal(t, "1\tCM000663.2\tNC_000001.11\tchr1\t248956422\tassembled-molecule\tChromosome\tno", lines[1])
	assert.Contains(t, lines, "MT\tJ01415.2\tNC_012920.1\tchrM\t16569\tassembled-molecule\tMitochondrion\tyes")

	buf.Reset()
	scheme := genome.UCSC
	require.NoError(t, listContigs(&buf, builds.GRCh37P13[Length](), contigsOpts{scheme: &scheme, assembledOnly: true}))
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// GRCh37 MT has no UCSC name.
	assert.Len(t, lines, 24)
	assert.Equal(t, "chr1", lines[0])
	assert.NotContains(t, lines, "chrM")
}

func TestLookup(t *testing.T) {
	b := grch38(t)
	var buf bytes.Buffer
	require.NoError(t, lookup(&buf, b, []string{"chrY", "NC_000001.11"}))
	assert.Equal(t,
		"#name\tgenbank\trefseq\tucsc\tlength\trole\tmolecule_type\tcircular\n"+
			"Y\tCM000686.2\tNC_000024.10\tchrY\t57227415\tassembled-molecule\tChromosome\tno\n"+
			"1\tCM000663.2\tNC_000001.11\tchr1\t248956422\tassembled-molecule\tChromosome\tno\n",
		buf.String())

	buf.Reset()
	err := lookup(&buf, b, []string{"chr1", "chrMT"})
	require.Error(t, err)
	assert.True(t, errors.Is(errors.NotExist, err))
	assert.Contains(t, err.Error(), `unknown contig "chrMT"`)
	assert.Contains(t, err.Error(), "did you mean chrM")
	// Rows before the failure are still written.
	assert.Contains(t, buf.String(), "\tchr1\t")

	err = lookup(&buf, b, []string{"nonexistent-contig-xyz"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRename(t *testing.T) {
	b := grch38(t)
	tests := []struct {
		in, want string
		opts     renameOpts
	}{
		{
			"#comment\tchr1\n1\t100\t200\tfoo\nchrY\t5\t6\nNC_012920.1\t1\t2",
			"#comment\tchr1\nchr1\t100\t200\tfoo\nchrY\t5\t6\nchrM\t1\t2",
			renameOpts{to: genome.UCSC},
		},
		{
			"chr1\t100\r\nchrX\t5\r\n",
			"NC_000001.11\t100\r\nNC_000023.11\t5\r\n",
			renameOpts{to: genome.RefSeq},
		},
		{
			"##fileformat=VCFv4.2\n##contig=<ID=chr1,length=248956422>\n##contig=<ID=chrM>\n#CHROM\tPOS\nchr1\t10\n\nchrM\t3\n",
			"##fileformat=VCFv4.2\n##contig=<ID=1,length=248956422>\n##contig=<ID=MT>\n#CHROM\tPOS\n1\t10\n\nMT\t3\n",
			renameOpts{to: genome.SequenceName},
		},
		{
			"chr1\t1\nchrUn_xyz\t2\n",
			"CM000663.2\t1\nchrUn_xyz\t2\n",
			renameOpts{to: genome.GenBank, keepUnknown: true},
		},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, rename(&buf, strings.NewReader(test.in), b, test.opts), "input %q", test.in)
		assert.Equal(t, test.want, buf.String())
	}

	var buf bytes.Buffer
	err := rename(&buf, strings.NewReader("chr1\t1\nchrUn_xyz\t2\n"), b, renameOpts{to: genome.UCSC})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, errors.Is(errors.NotExist, err) || strings.Contains(err.Error(), "unknown contig"))

	err = rename(&buf, strings.NewReader("MT\t1\n"), builds.GRCh37P13[Length](), renameOpts{to: genome.UCSC})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contig MT has no ucsc name")
}

// writeTestFiles writes the GRCh38 chr1/chrY sequence dictionary in several
// formats and returns their paths.
func writeTestFiles(t *testing.T, dir string) map[string]string {
	const dict = "@HD\tVN:1.5\n@SQ\tSN:chr1\tLN:248956422\n@SQ\tSN:chrY\tLN:57227415\n"
	const fai = "chr1\t248956422\t6\t60\t61\nchrY\t57227415\t252984004\t60\t61\n"
	paths := map[string]string{
		"dict":    filepath.Join(dir, "ref.dict"),
		"fai":     filepath.Join(dir, "ref.fa.fai"),
		"fasta":   filepath.Join(dir, "short.fa"),
		"fastagz": filepath.Join(dir, "short.fa.gz"),
		"bam":     filepath.Join(dir, "reads.bam"),
	}
	require.NoError(t, ioutil.WriteFile(paths["dict"], []byte(dict), 0644))
	require.NoError(t, ioutil.WriteFile(paths["fai"], []byte(fai), 0644))

	// chrM is too short in this FASTA.
	const fasta = ">chrM\nACGT\nAC\n"
	require.NoError(t, ioutil.WriteFile(paths["fasta"], []byte(fasta), 0644))
	f, err := os.Create(paths["fastagz"])
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(fasta))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	h, err := grch38(t).SAMHeader(genome.RefSeq)
	require.NoError(t, err)
	f, err = os.Create(paths["bam"])
	require.NoError(t, err)
	w, err := bam.NewWriter(f, h, 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return paths
}

func TestCheck(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	paths := writeTestFiles(t, tempDir)
	ctx := context.Background()
	b := grch38(t)

	for _, kind := range []string{"dict", "fai", "bam"} {
		var buf bytes.Buffer
		require.NoError(t, check(ctx, &buf, b, paths[kind]), "kind %s", kind)
		assert.Contains(t, buf.String(), "sequences match GRCh38.p13")
	}
	for _, kind := range []string{"fasta", "fastagz"} {
		var buf bytes.Buffer
		err := check(ctx, &buf, b, paths[kind])
		require.Error(t, err, "kind %s", kind)
		assert.True(t, errors.Is(errors.Invalid, err))
		assert.Equal(t, "chrM: length mismatch: 6 in dictionary, 16569 in contig MT\n", buf.String())
	}

	var buf bytes.Buffer
	err := check(ctx, &buf, builds.GRCh37P13[Length](), paths["dict"])
	require.Error(t, err)
	assert.Contains(t, buf.String(), "chr1: length mismatch: 248956422 in dictionary, 249250621 in contig 1")

	assert.Error(t, check(ctx, &buf, b, filepath.Join(tempDir, "missing.dict")))
}

func TestIdentify(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	paths := writeTestFiles(t, tempDir)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, identify(ctx, &buf, paths["bam"]))
	assert.Equal(t, "GRCh38.p13\trefseq\texact\n", buf.String())

	buf.Reset()
	require.NoError(t, identify(ctx, &buf, paths["dict"]))
	assert.Equal(t, "GRCh38.p13\tucsc\tsubset\n", buf.String())

	assert.Error(t, identify(ctx, &buf, paths["fasta"]))
}

func TestGuessInputKind(t *testing.T) {
	for path, want := range map[string]inputKind{
		"a.bam":       bamInput,
		"a.fa.fai":    faiInput,
		"a.fa":        fastaInput,
		"a.fasta.gz":  fastaInput,
		"a.fna":       fastaInput,
		"a.dict":      samInput,
		"a.sam":       samInput,
		"s3://b/a.fa": fastaInput,
	} {
		assert.Equal(t, want, guessInputKind(path), path)
	}
}

func TestCommandLine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	env := &cmdline.Env{
		Stdin:  strings.NewReader("chrY\t1\t2\n"),
		Stdout: &stdout,
		Stderr: &stderr,
		Vars:   map[string]string{},
	}
	require.NoError(t, cmdline.ParseAndRun(newRoot(), env, []string{"rename", "-to=refseq", "GRCh38.p13"}))
	assert.Equal(t, "NC_000024.10\t1\t2\n", stdout.String())

	stdout.Reset()
	require.NoError(t, cmdline.ParseAndRun(newRoot(), env, []string{"lookup", "GRCh38.p13", "CM000686.2"}))
	assert.Contains(t, stdout.String(), "\nY\tCM000686.2\t")

	assert.Error(t, cmdline.ParseAndRun(newRoot(), env, []string{"lookup", "GRCh39", "chr1"}))
	assert.Error(t, cmdline.ParseAndRun(newRoot(), env, []string{"contigs", "-scheme=ensembl", "GRCh38.p13"}))
	assert.Error(t, cmdline.ParseAndRun(newRoot(), env, []string{"builds", "extra"}))
}

func TestRunners(t *testing.T) {
	for _, c := range newRoot().Children {
		_, ok := c.Runner.(cmdutil.RunnerFunc)
		assert.True(t, ok, "command %s", c.Name)
	}
}
