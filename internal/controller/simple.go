package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "bladegen.dev/pkg/bladegen/internal/model"
)

const separator = "-------------------------------------------------------------"

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStart announces a recursive run.
func (s *SimpleUI) DisplayStart(ctx context.Context, target m.Path, recursive bool) {
	if ctx.Err() != nil || !recursive {
		return
	}

	s.printf("gen Blade BUILD recursively for folder [%s]\n", displayPath(target))
}

// DisplayDirectory prints the banner of a directory about to be processed.
func (s *SimpleUI) DisplayDirectory(ctx context.Context, dir m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s\ngenerate Blade BUILD file for folder [%s]\n", separator, displayPath(dir))
}

// DisplayDirectoryDone closes the banner of a written directory.
func (s *SimpleUI) DisplayDirectoryDone(ctx context.Context, result m.DirectoryResult) {
	if ctx.Err() != nil || result.Status != m.Written {
		return
	}

	s.printf("%s\n", separator)
}

// DisplaySummary prints one row per processed directory.
func (s *SimpleUI) DisplaySummary(_ context.Context, results []m.DirectoryResult) {
	if len(results) == 0 {
		return
	}

	s.printf("\n%s", renderSummaryTable(results))
}

func renderSummaryTable(results []m.DirectoryResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Folder", "Status", "Rules", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	written := 0

	for _, result := range results {
		if result.Status == m.Written {
			written++
		}

		table.Append([]string{
			displayPath(result.Dir),
			result.Status.String(),
			fmt.Sprintf("%d", result.Rules),
			result.Reason,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Folders %d", len(results)),
		fmt.Sprintf("Written %d", written),
		"",
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func displayPath(p m.Path) string {
	if p == "" {
		return "."
	}

	return string(p)
}
