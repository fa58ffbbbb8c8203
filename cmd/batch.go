package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/claims-triage/internal/export"
	"github.com/sells-group/claims-triage/internal/model"
	"github.com/sells-group/claims-triage/internal/pipeline"
	"github.com/sells-group/claims-triage/internal/source"
)

var (
	batchDir    string
	batchOutDir string
	batchCSV    string
	batchXLSX   string
)

// batchSummary is the JSON summary printed after a batch run.
type batchSummary struct {
	BatchID   string `json:"batch_id"`
	Documents int    `json:"documents"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
	Duration  string `json:"duration"`
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process a directory of FNOL documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		files, err := collectDocuments(batchDir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			zap.L().Info("no documents found", zap.String("dir", batchDir))
			return nil
		}

		if batchOutDir != "" {
			if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
				return eris.Wrapf(err, "batch: create out dir %s", batchOutDir)
			}
		}

		batchID := uuid.New().String()
		start := time.Now()
		zap.L().Info("processing batch",
			zap.String("batch_id", batchID),
			zap.Int("documents", len(files)),
			zap.Int("concurrency", cfg.Batch.MaxConcurrentDocs),
		)

		loader := source.NewLoader(cfg.Input, cfg.PDF)
		results, failed, err := processDocs(ctx, loader, files, batchOutDir, cfg.Batch.MaxConcurrentDocs)
		if err != nil {
			return err
		}

		if batchCSV != "" {
			if err := export.WriteCSV(results, batchCSV); err != nil {
				return err
			}
		}
		if batchXLSX != "" {
			if err := export.WriteXLSX(results, batchXLSX); err != nil {
				return err
			}
		}

		summary := batchSummary{
			BatchID:   batchID,
			Documents: len(files),
			Succeeded: len(results),
			Failed:    failed,
			Duration:  time.Since(start).Round(time.Millisecond).String(),
		}
		zap.L().Info("batch complete",
			zap.String("batch_id", summary.BatchID),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("failed", summary.Failed),
			zap.String("duration", summary.Duration),
		)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchDir, "dir", "", "directory of documents to process (required)")
	f.StringVar(&batchOutDir, "out-dir", "", "directory for per-document results (default alongside each input)")
	f.StringVar(&batchCSV, "csv", "", "also export all results to a CSV file")
	f.StringVar(&batchXLSX, "xlsx", "", "also export all results to an XLSX file")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

// collectDocuments lists the processable documents directly under dir.
func collectDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read dir %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !source.IsDocument(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// processDocs runs the pipeline over files concurrently, writing one JSON
// result file per document. It returns the successful results in input order
// and the number of failures.
func processDocs(ctx context.Context, loader *source.Loader, files []string, outDir string, concurrency int) ([]model.DocumentResult, int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	results := make([]model.DocumentResult, len(files))
	var failed atomic.Int64

	for i, path := range files {
		g.Go(func() error {
			log := zap.L().With(zap.String("document", path))

			text, err := loader.Load(gctx, path)
			if err != nil {
				failed.Add(1)
				log.Error("load failed", zap.Error(err))
				return nil // don't abort the batch on individual failure
			}

			res := model.DocumentResult{Document: path, Result: pipeline.Process(text)}
			if err := writeResultJSON(res, resultPath(path, outDir)); err != nil {
				failed.Add(1)
				log.Error("write result failed", zap.Error(err))
				return nil
			}

			results[i] = res
			log.Info("document processed",
				zap.String("route", string(res.Result.Routing.Route)),
				zap.Int("missing_fields", len(res.Result.MissingFields)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, int(failed.Load()), eris.Wrap(err, "batch processing")
	}

	ok := make([]model.DocumentResult, 0, len(results))
	for _, r := range results {
		if r.Document != "" {
			ok = append(ok, r)
		}
	}
	return ok, int(failed.Load()), nil
}

// resultPath places the per-document result next to the input unless an
// output directory is set.
func resultPath(docPath, outDir string) string {
	base := filepath.Base(docPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".result.json"
	if outDir == "" {
		return filepath.Join(filepath.Dir(docPath), name)
	}
	return filepath.Join(outDir, name)
}

func writeResultJSON(res model.DocumentResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "batch: create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return eris.Wrapf(err, "batch: encode %s", path)
	}
	return nil
}
