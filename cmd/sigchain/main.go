// Package main provides the CLI entrypoint for sigchain.
//
// sigchain evaluates named accessor definitions against YAML documents:
//   - Loads accessor signatures from a YAML definition file
//   - Loads a subject document (YAML mappings, sequences, scalars)
//   - Runs accessor getters against the document and prints the results
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"sigchain/codec"
	"sigchain/sig"
	"sigchain/utils"
)

func main() {
	var (
		defsPath = flag.String("defs", "", "path to the YAML accessor definition file")
		docPath  = flag.String("doc", "", "path to the YAML subject document; empty lists the accessors")
		name     = flag.String("name", "", "accessor to evaluate; empty evaluates all of them")
		dump     = flag.Bool("dump", false, "print results with full type detail")
	)
	flag.Parse()

	if err := run(*defsPath, *docPath, *name, *dump); err != nil {
		fmt.Fprintln(os.Stderr, "sigchain:", err)
		os.Exit(1)
	}
}

func run(defsPath, docPath, name string, dump bool) error {
	if defsPath == "" {
		return fmt.Errorf("missing -defs")
	}
	file, err := codec.LoadFile(defsPath)
	if err != nil {
		return err
	}

	if docPath == "" {
		for _, n := range utils.SortedKeys(file.Accessors) {
			fmt.Printf("%s\t%s\n", n, file.Accessors[n])
		}
		return nil
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		return err
	}

	if name != "" {
		s, ok := file.Accessors[name]
		if !ok {
			return fmt.Errorf("no accessor %q in %s", name, defsPath)
		}
		return evaluate(s, doc, dump)
	}

	for _, n := range utils.SortedKeys(file.Accessors) {
		fmt.Printf("%s:\n", n)
		if err := evaluate(file.Accessors[n], doc, dump); err != nil {
			return fmt.Errorf("%s: %w", n, err)
		}
	}
	return nil
}

func evaluate(s sig.Signature, doc any, dump bool) error {
	value, err := sig.CompileGetter(s)(doc)
	if err != nil {
		return err
	}
	if dump {
		spew.Dump(value)
		return nil
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", path, err)
	}
	return doc, nil
}
