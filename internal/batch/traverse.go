package batch

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"
)

// collectMatches walks the tree under root and returns every regular
// file whose path satisfies match. WalkDir visits entries in lexical
// order per directory; the full result is sorted again so batch logs
// are reproducible across runs regardless of tree shape. An unreadable
// subtree follows the per-file failure policy: strict mode aborts,
// isolate mode records it and keeps walking siblings.
func (p *Processor) collectMatches(root string, report *Report, match func(path string) bool) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return p.fileFailed(report, path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if match(path) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// newProgressBar builds the per-batch progress bar, or nil when
// progress is disabled or pointless (dry-run).
func (p *Processor) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if !p.cfg.Batch.Progress || p.DryRun || total == 0 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(p.errOut),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func barAdd(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}

func barFinish(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
