// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cmd

import (
	"regexp"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/genomebuild/builds"
	"github.com/grailbio/genomebuild/genome"
	"v.io/x/lib/cmdline"
)

// Length is the contig length type used by the command.
type Length = int64

func lookupBuild(id string) (*genome.Build[Length], error) {
	return builds.Lookup[Length](id)
}

func newCmdBuilds() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "builds",
		Short: "List the builtin genome builds",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("builds takes no arguments, but got %v", argv)
		}
		return listBuilds(env.Stdout)
	})
	return cmd
}

func newCmdContigs() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "contigs",
		Short:    "Print the contigs of a build as TSV",
		ArgsName: "build",
	}
	schemeFlag := cmd.Flags.String("scheme", "", `If set, print only the names under this scheme, one per line.
One of "name", "genbank", "refseq", "ucsc".`)
	assembledFlag := cmd.Flags.Bool("assembled", false, "Print only assembled molecules (chromosomes and organelles)")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return env.UsageErrorf("contigs takes one build argument, but got %v", argv)
		}
		b, err := lookupBuild(argv[0])
		if err != nil {
			return err
		}
		opts := contigsOpts{assembledOnly: *assembledFlag}
		if *schemeFlag != "" {
			scheme, err := genome.ParseNameScheme(*schemeFlag)
			if err != nil {
				return err
			}
			opts.scheme = &scheme
		}
		return listContigs(env.Stdout, b, opts)
	})
	return cmd
}

func newCmdLookup() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "lookup",
		Short:    "Resolve contig names given in any naming scheme",
		ArgsName: "build name...",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return env.UsageErrorf("lookup takes a build and one or more contig names, but got %v", argv)
		}
		b, err := lookupBuild(argv[0])
		if err != nil {
			return err
		}
		return lookup(env.Stdout, b, argv[1:])
	})
	return cmd
}

func newCmdRename() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "rename",
		Short: "Rewrite the contig names of a BED, VCF or other TSV file",
		Long: `
Rename rewrites the first column of every line to the contig's name under the
target scheme. Lines starting with '#' are copied, except that VCF
"##contig=<ID=...>" lines are renamed too. The input is read from stdin if no
path is given; the output goes to stdout.`,
		ArgsName: "build [path]",
	}
	toFlag := cmd.Flags.String("to", "ucsc", `Target naming scheme: "name", "genbank", "refseq" or "ucsc"`)
	keepUnknownFlag := cmd.Flags.Bool("keep-unknown", false, "Copy lines with unknown contigs unchanged instead of failing")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 && len(argv) != 2 {
			return env.UsageErrorf("rename takes a build and an optional path, but got %v", argv)
		}
		b, err := lookupBuild(argv[0])
		if err != nil {
			return err
		}
		scheme, err := genome.ParseNameScheme(*toFlag)
		if err != nil {
			return err
		}
		opts := renameOpts{to: scheme, keepUnknown: *keepUnknownFlag}
		if len(argv) == 1 {
			return rename(env.Stdout, env.Stdin, b, opts)
		}
		return renamePath(vcontext.Background(), env.Stdout, argv[1], b, opts)
	})
	return cmd
}

func newCmdCheck() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "check",
		Short: "Check that a sequence dictionary matches a build",
		Long: `
Check reads the sequence dictionary of a SAM or BAM file, a Picard .dict
file, a samtools .fai index or a FASTA file, and verifies that every sequence
is a contig of the build with the same length. Mismatches are printed and
cause a nonzero exit.`,
		ArgsName: "build path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return env.UsageErrorf("check takes a build and a path, but got %v", argv)
		}
		b, err := lookupBuild(argv[0])
		if err != nil {
			return err
		}
		return check(vcontext.Background(), env.Stdout, b, argv[1])
	})
	return cmd
}

func newCmdIdentify() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "identify",
		Short:    "Find the builtin build a sequence dictionary was made from",
		ArgsName: "path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return env.UsageErrorf("identify takes one path, but got %v", argv)
		}
		return identify(vcontext.Background(), env.Stdout, argv[0])
	})
	return cmd
}

func newRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-genome-build",
		Short:    "Look up contigs of reference genome builds",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdBuilds(),
			newCmdContigs(),
			newCmdLookup(),
			newCmdRename(),
			newCmdCheck(),
			newCmdIdentify(),
		},
	}
}

// Run parses the command line and runs the selected subcommand.  The -log
// flag sets the log level; "-log=debug" shows lookup diagnostics.
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.AddFlags()
	cmdline.HideGlobalFlagsExcept(regexp.MustCompile(`^log$`))
	cmdline.Main(newRoot())
}
