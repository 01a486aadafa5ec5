package batch

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/chdbatch/internal/chdman"
	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// Decompress extracts a CHD container, or every container under a
// directory, back into disc images. The image format is never supplied
// by the caller; it is recovered per file from chdman info metadata.
func (p *Processor) Decompress(ctx context.Context, input, output string, deleteInput bool) (*Report, error) {
	report := &Report{}

	info, err := p.statInput(input)
	if err != nil {
		return report, err
	}
	if err := checkOutputFile(output); err != nil {
		return report, err
	}

	if info.IsDir() {
		// A directory of containers never extracts into one image.
		if disc.IsSource(output) {
			return report, fmt.Errorf("%w: %s", disc.ErrArityMismatch, output)
		}
		if err := p.ensureOutputDir(output); err != nil {
			return report, err
		}

		matches, err := p.collectMatches(input, report, disc.IsContainer)
		if err != nil {
			return report, err
		}
		bar := p.newProgressBar(len(matches), "Decompressing")
		defer barFinish(bar)
		for _, path := range matches {
			if err := p.decompressFile(ctx, report, path, output, deleteInput); err != nil {
				return report, err
			}
			barAdd(bar)
		}
		return report, nil
	}

	if !disc.IsSource(output) {
		if err := p.ensureOutputDir(output); err != nil {
			return report, err
		}
	}
	return report, p.decompressFile(ctx, report, input, output, deleteInput)
}

func (p *Processor) decompressFile(ctx context.Context, report *Report, input, output string, deleteInput bool) error {
	if err := disc.CheckContainerExt(input); err != nil {
		return p.fileFailed(report, input, err)
	}

	format, err := p.probeFormat(ctx, input)
	if err != nil {
		return p.fileFailed(report, input, err)
	}

	target, err := disc.DeriveImageOutput(input, output, format)
	if err != nil {
		return p.fileFailed(report, input, err)
	}
	if err := checkOutputFile(target); err != nil {
		return p.fileFailed(report, input, err)
	}

	inv := chdman.Extract(p.cfg.Tool.ChdmanPath, format, input, target)
	p.echo(inv.String())
	if p.DryRun {
		report.add(FileResult{Input: input, Output: target, Status: StatusDone})
		return nil
	}

	result, err := p.runner.Run(ctx, inv.Argv())
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		p.toolFailed(report, input, target, result.ExitCode)
		return nil
	}

	if deleteInput {
		p.deleteSource(input)
	}
	report.add(FileResult{Input: input, Output: target, Status: StatusDone})
	return nil
}

// probeFormat recovers the original medium format by running the
// read-only info operation and scanning its metadata tags. The probe
// also runs in dry-run; without it the extract command could not be
// rendered truthfully.
func (p *Processor) probeFormat(ctx context.Context, input string) (disc.Format, error) {
	inv := chdman.Info(p.cfg.Tool.ChdmanPath, input, false)
	p.echo(inv.String())

	result, err := p.runner.Run(ctx, inv.Argv())
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("%w: info exit code %d", ErrToolFailed, result.ExitCode)
	}
	format, err := chdman.ScanTag(result.Stdout)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, input)
	}
	return format, nil
}
