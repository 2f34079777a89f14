/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-openapi/strfmt"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the name of the run manifest written next to the CSVs.
const ManifestFileName = "manifest.yaml"

// Manifest summarizes one completed download run.
type Manifest struct {
	Experiment  string         `yaml:"experiment"`
	GeneratedAt string         `yaml:"generatedAt"`
	Tables      []TableSummary `yaml:"tables"`
}

// TableSummary records one written output file.
type TableSummary struct {
	Table string `yaml:"table"`
	File  string `yaml:"file"`
	Rows  int    `yaml:"rows"`
}

// Finish writes the run manifest. Called once after all tables are written.
func (w *CSVWriter) Finish(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := Manifest{
		Experiment:  w.experiment,
		GeneratedAt: strfmt.DateTime(w.now()).String(),
		Tables:      w.summaries,
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(w.dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}

	w.log.Info("manifest written", zap.String("path", path))
	return nil
}
