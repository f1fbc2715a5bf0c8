// Command glad-gen generates Go OpenGL bindings from a Khronos registry.
//
// Usage:
//
//	glad-gen -registry gl.xml -api gl -version 4.6 -profile core -o gl/gl.go
//	glad-gen -config glad.yaml
//
// Flags override the values of the configuration file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"golang.org/x/tools/imports"

	"github.com/isncg/glad-go/pkg/config"
	"github.com/isncg/glad-go/pkg/diag"
	"github.com/isncg/glad-go/pkg/emit"
	"github.com/isncg/glad-go/pkg/registry"
	"github.com/isncg/glad-go/pkg/resolve"
	"github.com/isncg/glad-go/pkg/spec"
	"github.com/isncg/glad-go/pkg/translate"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	flag.String("registry", "", "Path to the registry XML (e.g. gl.xml)")
	flag.String("api", "", "API to generate (gl, gles1, gles2, glsc2)")
	flag.String("version", "", "Highest API version to include (empty for all)")
	flag.String("profile", "", "Profile (core, compatibility)")
	flag.String("package", "", "Package name of the generated file")
	flag.String("o", "", "Output path of the generated file")
	flag.String("diag", "", "Append diagnostics to this CBOR log")
	verbose := flag.Bool("v", false, "Also print informational diagnostics")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	applyFlags(cfg, flag.CommandLine)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: glad-gen [-config <path>] -registry <path> -api <api> [-version <ver>] [-profile <profile>] [-package <name>] [-o <path>] [-diag <path>] [-v]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags copies every flag set on the command line into cfg.
func applyFlags(cfg *config.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "registry":
			cfg.Registry = v
		case "api":
			cfg.API = v
		case "version":
			cfg.Version = v
		case "profile":
			cfg.Profile = v
		case "package":
			cfg.Package = v
		case "o":
			cfg.Output = v
		case "diag":
			cfg.Diagnostics = v
		}
	})
}

func run(cfg *config.Config, logger *slog.Logger) error {
	runID := uuid.New().String()

	sinks := []diag.Logger{diag.NewSlogAdapter(logger)}
	if cfg.Diagnostics != "" {
		fl, err := diag.NewFileLogger(cfg.Diagnostics)
		if err != nil {
			return fmt.Errorf("opening diagnostics log: %w", err)
		}
		defer fl.Close()
		sinks = append(sinks, fl)
	}
	events := diag.WithRunID(diag.NewMultiLogger(sinks...), runID)

	code, err := generate(cfg, events)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := writeFormatted(cfg.Output, code); err != nil {
		return err
	}

	logger.Info("generated bindings",
		slog.String("path", cfg.Output),
		slog.String("api", cfg.API),
		slog.String("version", cfg.Version),
		slog.String("run_id", runID))
	return nil
}

// generate runs the pipeline from the registry file to unformatted Go source.
func generate(cfg *config.Config, logger diag.Logger) ([]byte, error) {
	root, err := registry.Load(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("loading registry: %w", err)
	}
	s, err := spec.Build(root)
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}

	s.Check(logger)

	v, err := cfg.APIVersion()
	if err != nil {
		return nil, err
	}

	tables := translate.ForRegistry(cfg.Overrides(), s.Vendors(), logger)
	r := resolve.New(s, tables, logger)
	gen := emit.New(s, r, tables, spec.NewSelector(s), logger)

	code, err := gen.Generate(emit.Options{
		API:     cfg.API,
		Version: v,
		Profile: cfg.Profile,
		Package: cfg.Package,
		Runtime: cfg.Runtime,
	})
	if err != nil {
		return nil, fmt.Errorf("generating bindings: %w", err)
	}
	return code, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code []byte) error {
	formatted, err := imports.Process(path, code, nil)
	if err != nil {
		// Keep the unformatted output for debugging the generator.
		_ = os.WriteFile(path+".broken", code, 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
