// Copyright (c) 2025 A Bit of Help, Inc.

// Command gen-metadata compiles a directory of human-edited YAML
// numbering-plan sources (§6.1, §6.2) into the binary blobs the metadata
// and geocode packages embed and serve at runtime. It is an offline build
// tool only: nothing in the runtime module imports this package.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abitofhelp/phonenumber/config"
	"github.com/abitofhelp/phonenumber/env"
	"github.com/abitofhelp/phonenumber/filterdsl"
	"github.com/abitofhelp/phonenumber/logging"
	"github.com/abitofhelp/phonenumber/metadata"
	"github.com/abitofhelp/phonenumber/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// buildInfo implements config.AppConfigProvider so the build tool reports
// its identity through the same adapter the server uses, rather than a
// second bespoke identity type.
type buildInfo struct {
	version string
}

func (b buildInfo) GetAppName() string        { return "gen-metadata" }
func (b buildInfo) GetAppVersion() string     { return b.version }
func (b buildInfo) GetAppEnvironment() string { return "build" }

func main() {
	srcDir := flag.String("src", env.GetEnv("GEN_METADATA_SRC", "metadata/sources"), "directory of region/*.yaml numbering-plan sources")
	geoDir := flag.String("geo-src", env.GetEnv("GEN_METADATA_GEO_SRC", "geocode/sources"), "directory of geo/*.yaml prefix-description sources")
	outFile := flag.String("out", env.GetEnv("GEN_METADATA_OUT", "metadata.bin"), "path to write the compiled metadata blob")
	geoOutDir := flag.String("geo-out", env.GetEnv("GEN_METADATA_GEO_OUT", "geodata"), "directory to write compiled prefix-description blobs")
	filterExpr := flag.String("filter", env.GetEnv("GEN_METADATA_FILTER", ""), "build filter DSL expression (§6.3), empty keeps every field")
	flag.Parse()

	zapLogger, err := logging.NewLogger("info", true)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gen-metadata: failed to create logger:", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	logger := logging.NewContextLogger(zapLogger)
	ctx := context.Background()

	filter, err := filterdsl.Parse(*filterExpr)
	if err != nil {
		logger.Error(ctx, "invalid filter expression", zap.Error(err))
		os.Exit(1)
	}

	if err := compileMetadata(*srcDir, *outFile, filter, logger); err != nil {
		logger.Error(ctx, "metadata compile failed", zap.Error(err))
		os.Exit(1)
	}
	if err := compileGeoData(*geoDir, *geoOutDir, logger); err != nil {
		logger.Error(ctx, "geo data compile failed", zap.Error(err))
		os.Exit(1)
	}

	app := config.NewGenericConfigAdapter(buildInfo{version: env.GetEnv("GEN_METADATA_VERSION", "dev")}).GetApp()
	logger.Info(ctx, "gen-metadata completed successfully",
		zap.String("name", app.GetName()),
		zap.String("version", app.GetVersion()),
		zap.String("environment", app.GetEnvironment()))
}

func compileMetadata(srcDir, outFile string, filter *filterdsl.Filter, logger *logging.ContextLogger) error {
	ctx := context.Background()
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	var regions, nonGeo []regionSource
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(srcDir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var sf sourceFile
		if err := yaml.Unmarshal(raw, &sf); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, r := range sf.Regions {
			if errs := validation.Struct(r); len(errs) > 0 {
				return fmt.Errorf("%s: region %q: %s", path, r.ID, validation.Summarize(errs))
			}
			regions = append(regions, r)
		}
		for _, r := range sf.NonGeo {
			if errs := validation.Struct(r); len(errs) > 0 {
				return fmt.Errorf("%s: non-geo %d: %s", path, r.CountryCode, validation.Summarize(errs))
			}
			nonGeo = append(nonGeo, r)
		}
	}

	regionMeta := make([]*metadata.Metadata, 0, len(regions))
	for _, r := range regions {
		regionMeta = append(regionMeta, toMetadata(r, filter))
	}
	nonGeoMeta := make([]*metadata.Metadata, 0, len(nonGeo))
	for _, r := range nonGeo {
		nonGeoMeta = append(nonGeoMeta, toMetadata(r, filter))
	}

	blob := metadata.EncodeBlob(regionMeta, nonGeoMeta)
	if err := os.WriteFile(outFile, blob, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}
	logger.Info(ctx, "compiled metadata blob",
		zap.Int("regions", len(regions)),
		zap.Int("non_geo", len(nonGeo)),
		zap.String("out", outFile),
	)
	return nil
}

func compileGeoData(srcDir, outDir string, logger *logging.ContextLogger) error {
	ctx := context.Background()
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info(ctx, "no geo source directory, skipping", zap.String("dir", srcDir))
			return nil
		}
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		path := filepath.Join(srcDir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		var g geoSource
		if err := yaml.Unmarshal(raw, &g); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if errs := validation.Struct(g); len(errs) > 0 {
			return fmt.Errorf("%s: %s", path, validation.Summarize(errs))
		}
		blob := toGeoTable(g)
		name := fmt.Sprintf("%d_%s.bin", g.CallingCode, g.Language)
		if err := os.WriteFile(filepath.Join(outDir, name), blob, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		count++
	}
	logger.Info(ctx, "compiled geo data files", zap.Int("files", count), zap.String("out", outDir))
	return nil
}
