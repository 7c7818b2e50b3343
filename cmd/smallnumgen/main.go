// Command smallnumgen resolves statically declared integer bounds to the
// smallest sufficient widths and emits Go type aliases.
//
// Manifest mode reads a YAML file declaring named bounds:
//
//	smallnumgen -config smallnum.yaml -out small_types.gen.go
//
// Single-type mode declares one bound on the command line, which keeps
// go:generate directives self-contained:
//
//	//go:generate go run github.com/tnballo/smallnum/cmd/smallnumgen -name nodeIndex -max 500 -out node_index.gen.go
//
// smallnumgen exits nonzero on any invalid or unrepresentable bound, so a
// bound no width can satisfy fails the build.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/tnballo/smallnum/internal/codegen"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML manifest")
		outPath    = flag.String("out", "", "output file (default stdout)")
		pkgName    = flag.String("pkg", "", "package name for the generated file (overrides the manifest)")
		typeName   = flag.String("name", "", "single-type mode: name of the generated type")
		maxFlag    = flag.String("max", "", "single-type mode: unsigned bound, or upper bound together with -min")
		minFlag    = flag.String("min", "", "single-type mode: signed lower bound, requires -max")
		boundFlag  = flag.String("bound", "", "single-type mode: signed symmetric bound")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *configPath, *outPath, *pkgName, *typeName, *maxFlag, *minFlag, *boundFlag); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, outPath, pkgName, typeName, maxFlag, minFlag, boundFlag string) error {
	var (
		m   codegen.Manifest
		err error
	)

	switch {
	case configPath != "" && typeName != "":
		return errors.New("-config and -name are mutually exclusive")
	case configPath != "":
		m, err = codegen.LoadFile(configPath)
		if err != nil {
			return err
		}
	case typeName != "":
		m, err = singleType(typeName, maxFlag, minFlag, boundFlag)
		if err != nil {
			return err
		}
	default:
		return errors.New("either -config or -name is required")
	}

	if pkgName != "" {
		m.Package = pkgName
	}
	if m.Package == "" {
		// Set by go generate for the package containing the directive.
		m.Package = os.Getenv("GOPACKAGE")
	}

	logger.Debug("manifest loaded", "package", m.Package, "types", len(m.Types))

	src, err := codegen.Generate(m)
	if err != nil {
		return err
	}

	if outPath == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("generated", "out", outPath, "types", len(m.Types))
	return nil
}

func singleType(name, maxFlag, minFlag, boundFlag string) (codegen.Manifest, error) {
	t := codegen.TypeSpec{Name: name}

	if maxFlag != "" {
		if minFlag != "" {
			// Pair form: the upper bound is signed, so fully negative
			// ranges stay declarable.
			v, err := strconv.ParseInt(maxFlag, 10, 64)
			if err != nil {
				return codegen.Manifest{}, fmt.Errorf("parse -max: %w", err)
			}
			t.Smax = &v
		} else {
			v, err := strconv.ParseUint(maxFlag, 10, 64)
			if err != nil {
				return codegen.Manifest{}, fmt.Errorf("parse -max: %w", err)
			}
			t.Max = &v
		}
	}
	if minFlag != "" {
		v, err := strconv.ParseInt(minFlag, 10, 64)
		if err != nil {
			return codegen.Manifest{}, fmt.Errorf("parse -min: %w", err)
		}
		t.Min = &v
	}
	if boundFlag != "" {
		v, err := strconv.ParseInt(boundFlag, 10, 64)
		if err != nil {
			return codegen.Manifest{}, fmt.Errorf("parse -bound: %w", err)
		}
		t.Bound = &v
	}

	return codegen.Manifest{Types: []codegen.TypeSpec{t}}, nil
}
