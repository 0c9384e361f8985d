// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chemsp/dataset"
	"github.com/katalvlaran/chemsp/export"
)

// loadDataset reads the input file and logs its shape.
func (a *app) loadDataset(path string, signalColumns []string) (*dataset.Dataset, error) {
	start := time.Now()
	d, err := dataset.Load(path, signalColumns...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("dataset loaded",
		"file", filepath.Base(path), "molecules", d.Len(), "signals", d.SignalNames(),
		"elapsed", time.Since(start))

	return d, nil
}

// emit encodes v in the configured format to stdout, or to
// <out-dir>/<name><ext> when an output directory is configured.
func (a *app) emit(cmd *cobra.Command, name string, v any) error {
	f, err := a.cfg.OutputFormat()
	if err != nil {
		return err
	}
	if a.cfg.OutDir == "" {
		return export.Encode(cmd.OutOrStdout(), v, f)
	}
	if err = os.MkdirAll(a.cfg.OutDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(a.cfg.OutDir, name+f.Ext())
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = export.Encode(file, v, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return err
	}
	a.log.Info("output written", "path", path)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

	return err
}

// writeRecord persists rec under out-dir (named by run id) or prints it.
func (a *app) writeRecord(w io.Writer, rec *export.Record) error {
	f, err := a.cfg.OutputFormat()
	if err != nil {
		return err
	}
	if a.cfg.OutDir == "" {
		return export.Encode(w, rec, f)
	}
	path, err := export.WriteFile(a.cfg.OutDir, rec, f)
	if err != nil {
		return err
	}
	a.log.Info("record written", "path", path, "run_id", rec.RunID, "fingerprint", rec.Fingerprint)
	_, err = fmt.Fprintln(w, path)

	return err
}
