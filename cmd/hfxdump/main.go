/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command hfxdump resolves hint files against a described world and prints
// the active units, the aggregated access map and any warnings.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"dirpx.dev/hfx"
	"dirpx.dev/hfx/apis"
	"dirpx.dev/hfx/factbase"
	"dirpx.dev/hfx/hintfile"
	"dirpx.dev/hfx/report"
	"dirpx.dev/hfx/source"
)

// Options describes the command line.
type Options struct {
	HintFiles []string          `short:"f" long:"hint" description:"hint file to load (repeatable)"`
	HintDirs  []string          `short:"d" long:"hints" description:"directory of hint files (repeatable)"`
	TypesFile string            `short:"t" long:"types" description:"file listing known type names, one per line"`
	EnvFile   string            `short:"e" long:"env" description:"dotenv file of build properties"`
	Props     map[string]string `short:"p" long:"prop" description:"build property key:value (repeatable)"`
	Explain   string            `short:"x" long:"explain" description:"print the activation chains for one type instead of the full dump"`
	Version   bool              `short:"v" long:"version" description:"print version and exit"`
}

var version = "dev"

func main() {
	options := &Options{}
	if _, err := flags.ParseArgs(options, os.Args[1:]); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}
	if options.Version {
		fmt.Printf("hfxdump: version: %v\n", version)
		return
	}
	if err := run(options); err != nil {
		fmt.Fprintln(os.Stderr, "hfxdump:", err)
		os.Exit(1)
	}
}

func run(options *Options) error {
	fb, err := buildFactBase(options)
	if err != nil {
		return err
	}
	src, err := buildSource(options)
	if err != nil {
		return err
	}

	res, err := hfx.Resolve(fb, src)
	if err != nil {
		return err
	}

	if options.Explain != "" {
		lines := report.Explain(res, options.Explain)
		if len(lines) == 0 {
			return fmt.Errorf("no active unit requests access to %q", options.Explain)
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	}
	return report.Dump(os.Stdout, res)
}

func buildFactBase(options *Options) (apis.FactBase, error) {
	var opts []factbase.Option
	if options.TypesFile != "" {
		names, err := readTypeList(options.TypesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, factbase.WithTypes(names...))
	}
	if options.EnvFile != "" {
		opts = append(opts, factbase.WithEnvFile(options.EnvFile))
	}
	if len(options.Props) > 0 {
		opts = append(opts, factbase.WithProperties(options.Props))
	}
	return factbase.New(opts...)
}

func buildSource(options *Options) (apis.Source, error) {
	if len(options.HintFiles) == 0 && len(options.HintDirs) == 0 {
		return nil, fmt.Errorf("no hint input; pass --hint or --hints")
	}
	var sources []apis.Source
	for _, dir := range options.HintDirs {
		sources = append(sources, hintfile.Source(dir))
	}
	for _, file := range options.HintFiles {
		recs, err := hintfile.File(file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source.Static(recs...))
	}
	return source.Multi(sources...), nil
}

// readTypeList reads one type name per line, skipping blanks and # comments.
func readTypeList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
