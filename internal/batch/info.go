package batch

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cyclone1070/chdbatch/internal/chdman"
	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// Info prints a tab-separated table of chdman info fields for a
// container, or for every container under a directory. The header row
// comes from the first record's keys and is printed exactly once per
// batch; zero matching files print nothing.
func (p *Processor) Info(ctx context.Context, input string, verbose bool) (*Report, error) {
	report := &Report{}

	fi, err := p.statInput(input)
	if err != nil {
		return report, err
	}

	if fi.IsDir() {
		matches, err := p.collectMatches(input, report, disc.IsContainer)
		if err != nil {
			return report, err
		}
		printed := 0
		for _, path := range matches {
			ok, err := p.infoFile(ctx, report, path, verbose, printed == 0)
			if err != nil {
				return report, err
			}
			if ok {
				printed++
			}
		}
		return report, nil
	}

	_, err = p.infoFile(ctx, report, input, verbose, true)
	return report, err
}

// infoFile handles one container. The returned bool reports whether a
// row (or dry-run command) was emitted, which drives the header-once
// bookkeeping in directory batches.
func (p *Processor) infoFile(ctx context.Context, report *Report, input string, verbose, printHeader bool) (bool, error) {
	if err := disc.CheckContainerExt(input); err != nil {
		return false, p.fileFailed(report, input, err)
	}

	inv := chdman.Info(p.cfg.Tool.ChdmanPath, input, verbose)
	if p.DryRun {
		p.echo(inv.String())
		report.add(FileResult{Input: input, Status: StatusDone})
		return true, nil
	}

	result, err := p.runner.Run(ctx, inv.Argv())
	if err != nil {
		return false, err
	}
	if result.ExitCode != 0 {
		p.toolFailed(report, input, "", result.ExitCode)
		return false, nil
	}

	rec, err := chdman.ParseRecord(result.Stdout)
	if err != nil {
		return false, p.fileFailed(report, input, fmt.Errorf("%w: %s", err, input))
	}
	if _, err := chdman.DecodeInfo(rec); err != nil {
		return false, p.fileFailed(report, input, fmt.Errorf("%w: %s", err, input))
	}

	if printHeader {
		fmt.Fprintln(p.out, strings.Join(rec.Keys(), "\t"))
	}
	fmt.Fprintln(p.out, strings.Join(rec.Values(), "\t"))
	report.add(FileResult{Input: input, Status: StatusDone})
	return true, nil
}
