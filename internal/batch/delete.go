package batch

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// deleteCompressSource removes a compressed source after a zero-exit
// create. For a cuesheet the companion files named by its FILE
// directives go first, then the sheet itself. Deletion is best-effort:
// missing files are tolerated and never escalate.
func (p *Processor) deleteCompressSource(input string) {
	if disc.Ext(input) == ".cue" {
		for _, name := range cueFileRefs(input) {
			_ = os.Remove(filepath.Join(filepath.Dir(input), name))
		}
	}
	p.deleteSource(input)
}

// deleteSource removes a single source file, tolerating absence.
func (p *Processor) deleteSource(input string) {
	_ = os.Remove(input)
}

// cueFileRefs extracts the companion file names referenced by FILE
// directives in a cuesheet. Both quoted and bare names are handled:
//
//	FILE "Some Game (Disc 1).bin" BINARY
//	FILE track01.bin BINARY
func cueFileRefs(cuePath string) []string {
	f, err := os.Open(cuePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	var refs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := cutDirective(line, "FILE")
		if !ok {
			continue
		}
		if name := parseFileName(rest); name != "" {
			refs = append(refs, name)
		}
	}
	return refs
}

// cutDirective strips a leading case-insensitive keyword followed by
// whitespace.
func cutDirective(line, keyword string) (string, bool) {
	if len(line) <= len(keyword) {
		return "", false
	}
	if !strings.EqualFold(line[:len(keyword)], keyword) {
		return "", false
	}
	rest := line[len(keyword):]
	trimmed := strings.TrimLeft(rest, " \t")
	if trimmed == rest {
		return "", false
	}
	return trimmed, true
}

// parseFileName reads the file token of a FILE directive: a quoted
// string, or everything up to the next whitespace.
func parseFileName(rest string) string {
	if strings.HasPrefix(rest, `"`) {
		name, _, found := strings.Cut(rest[1:], `"`)
		if !found {
			return ""
		}
		return name
	}
	name, _, _ := strings.Cut(rest, " ")
	name, _, _ = strings.Cut(name, "\t")
	return name
}
