package batch

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/chdbatch/internal/chdman"
	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// Compress compresses a disc image, or every disc image under a
// directory, into CHD containers. format may be disc.FormatAuto; an
// explicit format applies uniformly to the whole tree while auto is
// re-resolved per file.
func (p *Processor) Compress(ctx context.Context, input, output string, format disc.Format, deleteInput bool) (*Report, error) {
	report := &Report{}

	info, err := p.statInput(input)
	if err != nil {
		return report, err
	}
	if err := checkOutputFile(output); err != nil {
		return report, err
	}

	if info.IsDir() {
		// A directory of sources never compresses into one container.
		if disc.IsContainer(output) {
			return report, fmt.Errorf("%w: %s", disc.ErrArityMismatch, output)
		}
		if err := p.ensureOutputDir(output); err != nil {
			return report, err
		}

		matches, err := p.collectMatches(input, report, disc.IsSource)
		if err != nil {
			return report, err
		}
		bar := p.newProgressBar(len(matches), "Compressing")
		defer barFinish(bar)
		for _, path := range matches {
			if err := p.compressFile(ctx, report, path, output, format, deleteInput); err != nil {
				return report, err
			}
			barAdd(bar)
		}
		return report, nil
	}

	if !disc.IsContainer(output) {
		if err := p.ensureOutputDir(output); err != nil {
			return report, err
		}
	}
	return report, p.compressFile(ctx, report, input, output, format, deleteInput)
}

func (p *Processor) compressFile(ctx context.Context, report *Report, input, output string, format disc.Format, deleteInput bool) error {
	if err := disc.CheckSourceExt(input); err != nil {
		return p.fileFailed(report, input, err)
	}

	target := disc.DeriveOutput(input, output, disc.ContainerExt)
	if err := checkOutputFile(target); err != nil {
		return p.fileFailed(report, input, err)
	}

	var size int64
	if info, err := os.Stat(input); err == nil {
		size = info.Size()
	}
	resolved, err := disc.ResolveAuto(format, input, size,
		disc.AutoPolicy(p.cfg.Compress.AutoPolicy), p.cfg.Compress.CDThresholdBytes)
	if err != nil {
		return p.fileFailed(report, input, err)
	}

	inv := chdman.Create(p.cfg.Tool.ChdmanPath, resolved, input, target)
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
		p.deleteCompressSource(input)
	}
	report.add(FileResult{Input: input, Output: target, Status: StatusDone})
	return nil
}
