// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	rescleaner "github.com/lerenn/resource-cleaner/pkg/resource-cleaner"
)

const (
	statusKept    = "kept"
	statusRemoved = "removed"
)

// Summary writes the header location and the definition counts.
func Summary(w io.Writer, res *rescleaner.Result) error {
	if res == nil {
		return ErrNilResult
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Resource header analysis") + "\n")
	writeField(&b, "Header", fmt.Sprintf("%s (%s)", res.HeaderPath, res.Encoding))
	writeField(&b, "Files", fmt.Sprintf("%d candidates, %d scanned, %d skipped",
		res.FilesScanned, res.Scan.Scanned, res.Scan.Skipped))
	writeField(&b, "Defines", fmt.Sprintf("%d total, %s, %s",
		res.TotalDefines,
		keptStyle.Render(fmt.Sprintf("%d kept", res.KeptDefines)),
		removedStyle.Render(fmt.Sprintf("%d removed", res.RemovedDefines))))
	if len(res.Duplicates) > 0 {
		writeField(&b, "Duplicates", warningStyle.Render(strings.Join(res.Duplicates, ", ")))
	}
	if res.BackupPath != "" {
		writeField(&b, "Backup", res.BackupPath)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-11s", label+":")) + value + "\n")
}

// Table writes every definition with its old value and verdict, followed by
// the kept definitions with their new values.
func Table(w io.Writer, res *rescleaner.Result) error {
	if res == nil {
		return ErrNilResult
	}

	width := 0
	for _, e := range res.Before {
		width = max(width, len(e.Name))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Before") + "\n")
	for _, e := range res.Before {
		status := keptStyle.Render(statusKept)
		if !e.Used {
			status = removedStyle.Render(statusRemoved)
		}
		fmt.Fprintf(&b, "  %-*s %6d  %s\n", width, e.Name, e.OldValue, status)
	}

	b.WriteString(titleStyle.Render("After") + "\n")
	if len(res.After) == 0 {
		b.WriteString(labelStyle.Render("  (no definitions kept)") + "\n")
	}
	for _, a := range res.After {
		fmt.Fprintf(&b, "  %-*s %6d\n", width, a.Name, a.NewValue)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Diff returns a unified diff between the original and the rewritten header
// text. It is empty when the rewrite changes nothing.
func Diff(res *rescleaner.Result) (string, error) {
	if res == nil {
		return "", ErrNilResult
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(normalizeNewlines(res.Original)),
		B:        difflib.SplitLines(normalizeNewlines(res.Rewritten)),
		FromFile: res.HeaderPath,
		ToFile:   res.HeaderPath + " (renumbered)",
		Context:  3,
	})
}

// ColorDiff colors the added, removed and hunk lines of a unified diff.
func ColorDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(labelStyle.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(diffHunkStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(diffAddStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(diffRemoveStyle.Render(body))
		default:
			b.WriteString(body)
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
