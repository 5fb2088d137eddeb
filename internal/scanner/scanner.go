// Package scanner walks a scan root for Unreal archives and builds the
// asset catalog and dependency map out of their indexes.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/AreyMadhav/PakSeek/internal/asset"
	"github.com/AreyMadhav/PakSeek/internal/ctxlog"
	"github.com/AreyMadhav/PakSeek/internal/depgraph"
	"github.com/AreyMadhav/PakSeek/internal/pak"
	"github.com/AreyMadhav/PakSeek/internal/utoc"
)

const defaultWorkers = 4

// Scanner parses every archive under a scan root with a bounded pool of
// workers.
type Scanner struct {
	workers int
}

// New creates a scanner running at most workers concurrent archive
// parses. Non-positive values get the default.
func New(workers int) *Scanner {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Scanner{workers: workers}
}

// Result is the outcome of one scan: the catalog, the dependency map
// derived from it, and the archives that produced them. Mock is set when
// no archives were found and the built-in development catalog was
// substituted.
type Result struct {
	Root       string        `json:"root"`
	Archives   []string      `json:"archives"`
	Containers [][2]string   `json:"containers"`
	Assets     []asset.Asset `json:"assets"`
	Graph      *depgraph.Map `json:"dependency_graph"`
	Mock       bool          `json:"mock"`
	Duration   time.Duration `json:"duration"`
}

// parsed is one worker's answer for a single archive.
type parsed struct {
	path string
	file *pak.File
	err  error
}

// Scan discovers the archives at root (a .pak file or a directory
// searched recursively) and parses them concurrently. Directory roots
// are also searched for .utoc/.ucas container pairs. When the root holds
// neither, the mock catalog is returned so callers always have data to
// serve.
func (s *Scanner) Scan(ctx context.Context, root string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	archives, err := discoverArchives(root)
	if err != nil {
		return nil, err
	}

	containers := discoverContainers(ctx, root)

	if len(archives) == 0 && len(containers) == 0 {
		logger.Warn("No archives found, serving mock catalog", "root", root)
		return &Result{
			Root:       root,
			Archives:   []string{},
			Containers: [][2]string{},
			Assets:     asset.MockCatalog(),
			Graph:      asset.MockDependencies(),
			Mock:       true,
			Duration:   time.Since(start),
		}, nil
	}

	logger.Info("Scanning archives", "root", root, "count", len(archives), "workers", s.workers)

	jobs := make(chan string, len(archives))
	results := make(chan parsed, len(archives))

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go s.worker(ctx, jobs, results, &wg, i)
	}

	for _, path := range archives {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(results)

	files := make(map[string]*pak.File, len(archives))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("parse %s: %w", r.path, r.err))
			continue
		}
		files[r.path] = r.file
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	result := buildResult(ctx, root, archives, files)
	result.Containers = containers
	result.Duration = time.Since(start)
	logger.Info("Scan complete",
		"archives", len(result.Archives),
		"containers", len(result.Containers),
		"assets", len(result.Assets),
		"duration", result.Duration,
	)
	return result, nil
}

// worker is the processing loop for a single concurrent worker.
func (s *Scanner) worker(ctx context.Context, jobs <-chan string, results chan<- parsed, wg *sync.WaitGroup, workerID int) {
	defer wg.Done()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scan worker started", "workerID", workerID)

	for path := range jobs {
		if err := ctx.Err(); err != nil {
			results <- parsed{path: path, err: err}
			continue
		}
		file, err := pak.NewParser(path).Parse(ctx)
		results <- parsed{path: path, file: file, err: err}
	}
}

// discoverArchives resolves the scan root to a list of archive paths:
// the root itself when it is a .pak file, otherwise every .pak found
// under the directory.
func discoverArchives(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		if !strings.HasSuffix(strings.ToLower(root), ".pak") {
			return nil, fmt.Errorf("scan root %s is neither a directory nor a .pak file", root)
		}
		return []string{root}, nil
	}
	return pak.FindArchives(root)
}

// discoverContainers finds .utoc/.ucas pairs under a directory root,
// keeping only pairs that validate. A .pak file root has no containers.
func discoverContainers(ctx context.Context, root string) [][2]string {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return [][2]string{}
	}

	pairs, err := utoc.FindPairs(root)
	if err != nil {
		logger.Warn("Container discovery failed", "root", root, "error", err)
		return [][2]string{}
	}

	valid := make([][2]string, 0, len(pairs))
	for _, pair := range pairs {
		parser, err := utoc.NewParser(pair[0])
		if err != nil {
			logger.Warn("Skipping container pair", "utoc", pair[0], "error", err)
			continue
		}
		if ok, err := parser.Validate(ctx); err != nil || !ok {
			logger.Warn("Container failed validation", "utoc", pair[0], "error", err)
			continue
		}
		valid = append(valid, pair)
	}
	return valid
}

// buildResult folds parsed archives into a catalog and dependency map.
// Archives are processed in sorted path order and entries in index order
// so repeated scans of the same tree produce identical results. When the
// same asset name appears in several archives the first wins.
func buildResult(ctx context.Context, root string, archives []string, files map[string]*pak.File) *Result {
	logger := ctxlog.FromContext(ctx)

	result := &Result{
		Root:     root,
		Archives: archives,
		Assets:   []asset.Asset{},
		Graph:    depgraph.New(),
	}

	seen := make(map[string]struct{})
	for _, path := range archives {
		file := files[path]
		modTime := archiveModTime(path)

		for _, entry := range file.Entries {
			name := asset.DisplayName(entry.Filename)
			if _, dup := seen[name]; dup {
				logger.Debug("Skipping duplicate asset", "asset", name, "archive", path)
				continue
			}
			seen[name] = struct{}{}

			result.Assets = append(result.Assets, asset.Asset{
				Name:              name,
				Type:              asset.TypeForPath(entry.Filename),
				Size:              entry.UncompressedSize,
				Path:              entry.Filename,
				LastModified:      modTime,
				PakFile:           path,
				CompressedSize:    entry.CompressedSize,
				CompressionMethod: entry.Compression.String(),
				IsEncrypted:       entry.Encrypted,
				Hash:              entry.SHA1,
			})
			result.Graph.Deps[name] = asset.PlaceholderDependencies(entry.Filename)
		}
	}

	result.Graph.Optimize()
	return result
}

func archiveModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime().UTC()
}
