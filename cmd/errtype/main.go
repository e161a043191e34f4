/*
   Copyright 2025 The DIRPX Authors

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

// Command errtype expands .errtype definition files into Go source.
//
// Usage:
//
//	errtype [flags] file.errtype...
//
// Each input produces a sibling file named after it with the configured
// suffix, app.errtype becoming app_errtype.go by default.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"dirpx.dev/errtype"
	"dirpx.dev/errtype/internal/config"
	"dirpx.dev/errtype/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to .errtype.yaml config file")
		pkg        = flag.String("package", "", "fallback package name for inputs without a package line")
		headerFile = flag.String("header-file", "", "file whose contents are prepended to each generated file")
		toStdout   = flag.Bool("stdout", false, "write generated source to stdout instead of files")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "errtype:", err)
		os.Exit(2)
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}

	logger := logging.New(logging.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
	})
	defer logger.Sync()

	if err := run(afero.NewOsFs(), cfg, logger, *headerFile, *toStdout, flag.Args(), os.Stdout); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

// run generates output for every input path. The filesystem is injected so
// tests can operate on an in-memory tree.
func run(fsys afero.Fs, cfg *config.Config, logger *zap.Logger, headerFile string, toStdout bool, inputs []string, stdout io.Writer) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input files")
	}

	header := cfg.Header
	if headerFile != "" {
		b, err := afero.ReadFile(fsys, headerFile)
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		header = string(b)
	}

	for _, in := range inputs {
		src, err := afero.ReadFile(fsys, in)
		if err != nil {
			return fmt.Errorf("read %s: %w", in, err)
		}

		var opts []errtype.Option
		if cfg.Package != "" {
			opts = append(opts, errtype.WithPackage(cfg.Package))
		}
		if header != "" {
			opts = append(opts, errtype.WithHeader(header))
		}

		out, err := errtype.Generate(src, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}

		if toStdout {
			if _, err := stdout.Write(out); err != nil {
				return err
			}
			continue
		}

		dest := outputPath(in, cfg.OutSuffix)
		if err := afero.WriteFile(fsys, dest, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		logger.Info("generated",
			zap.String("input", in),
			zap.String("output", dest),
			zap.Int("bytes", len(out)),
		)
	}
	return nil
}

// outputPath derives the generated file name from the input path:
// dir/app.errtype -> dir/app<suffix>.
func outputPath(in, suffix string) string {
	base := strings.TrimSuffix(in, ".errtype")
	return base + suffix
}
