package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
)

func printRunStats(w io.Writer, stats *RunStats) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(w, "Workflow:  %s (%s)\n", stats.WorkflowID, stats.WorkflowType)
	_, _ = fmt.Fprintf(w, "Run ID:    %s\n", stats.RunID)
	_, _ = fmt.Fprintf(w, "Status:    %s\n", formatStatus(stats.Status))
	_, _ = fmt.Fprintf(w, "Started:   %s\n", stats.StartTime.Format(time.RFC3339))
	_, _ = fmt.Fprintf(w, "Elapsed:   %s\n", formatDuration(stats.ExecutionTime))

	if len(stats.Children) > 0 {
		_, _ = fmt.Fprintf(w, "\nBatch workflows: %d (%d closed)\n", len(stats.Children), stats.ClosedChildren())
		for _, child := range stats.Children {
			_, _ = fmt.Fprintf(w, "  %-60s %-16s %s\n", child.WorkflowID, formatStatus(child.Status), formatDuration(child.ExecutionTime))
		}
	}

	if r := stats.Report; r != nil {
		_, _ = fmt.Fprintf(w, "\nPass:      %s\n", r.Pass)
		_, _ = fmt.Fprintf(w, "Processed: %d (%s)\n", r.Processed, formatRate(r.Processed, stats.ExecutionTime))
		_, _ = fmt.Fprintf(w, "Succeeded: %d (%s)\n", r.Succeeded, percentageString(r.Succeeded, r.Processed))
		_, _ = fmt.Fprintf(w, "Failed:    %d (%s)\n", r.Failed, percentageString(r.Failed, r.Processed))
		_, _ = fmt.Fprintf(w, "Skipped:   %d (%s)\n", r.Skipped, percentageString(r.Skipped, r.Processed))
		if r.Message != "" {
			_, _ = fmt.Fprintf(w, "\n%s\n", r.Message)
		}
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 60))
}

// writeMarkdownReport writes the run summary and the per product outcomes
func writeMarkdownReport(path string, stats *RunStats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	var b strings.Builder
	fmt.Fprintf(&b, "# Enrichment run %s\n\n", stats.WorkflowID)
	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Workflow type | %s |\n", stats.WorkflowType)
	fmt.Fprintf(&b, "| Run ID | `%s` |\n", stats.RunID)
	fmt.Fprintf(&b, "| Status | %s |\n", formatStatus(stats.Status))
	fmt.Fprintf(&b, "| Started | %s |\n", stats.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "| Elapsed | %s |\n", formatDuration(stats.ExecutionTime))

	if len(stats.Children) > 0 {
		failed, running := 0, 0
		for _, child := range stats.Children {
			switch {
			case !isWorkflowComplete(child.Status):
				running++
			case child.Status != enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
				failed++
			}
		}
		passed := len(stats.Children) - failed - running
		fmt.Fprintf(&b, "\n## Batch workflows %s\n\n", statusEmoji(passed, failed, running))
		fmt.Fprintf(&b, "| Workflow | Status | Duration |\n|---|---|---|\n")
		for _, child := range stats.Children {
			fmt.Fprintf(&b, "| `%s` | %s | %s |\n", child.WorkflowID, formatStatus(child.Status), formatDuration(child.ExecutionTime))
		}
	}

	if r := stats.Report; r != nil {
		fmt.Fprintf(&b, "\n## %s pass %s\n\n", r.Pass, statusEmoji(r.Succeeded, r.Failed, 0))
		fmt.Fprintf(&b, "- Processed: %d (%s)\n", r.Processed, formatRate(r.Processed, stats.ExecutionTime))
		fmt.Fprintf(&b, "- Succeeded: %d (%s)\n", r.Succeeded, percentageString(r.Succeeded, r.Processed))
		fmt.Fprintf(&b, "- Failed: %d (%s)\n", r.Failed, percentageString(r.Failed, r.Processed))
		fmt.Fprintf(&b, "- Skipped: %d (%s)\n", r.Skipped, percentageString(r.Skipped, r.Processed))

		if len(r.Products) > 0 {
			fmt.Fprintf(&b, "\n| Product | Status | Images | Error |\n|---|---|---|---|\n")
			for _, p := range r.Products {
				fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", p.ProductID, p.Status, p.ImagesAdded, strings.ReplaceAll(p.Error, "|", "\\|"))
			}
		}
	}

	_, err = file.WriteString(b.String())
	return err
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_CONTINUED_AS_NEW:
		return "CONTINUED_AS_NEW"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "TIMED_OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

func isWorkflowComplete(status enums.WorkflowExecutionStatus) bool {
	return status != enums.WORKFLOW_EXECUTION_STATUS_RUNNING
}

// formatRate formats products per second
func formatRate(count int, duration time.Duration) string {
	if duration.Seconds() == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f/s", float64(count)/duration.Seconds())
}

func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

func statusEmoji(passed, failed, running int) string {
	if running > 0 {
		return "🟡"
	}
	if failed > 0 {
		return "❌"
	}
	if passed > 0 {
		return "✅"
	}
	return "⚪"
}
