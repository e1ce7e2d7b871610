package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"

	"github.com/francuello10/tec-ecommerce-suite/internal/enrichment"
)

// visibilityClient is the part of client.Client the report needs
type visibilityClient interface {
	ListWorkflow(ctx context.Context, request *workflowservice.ListWorkflowExecutionsRequest) (*workflowservice.ListWorkflowExecutionsResponse, error)
	GetWorkflow(ctx context.Context, workflowID string, runID string) client.WorkflowRun
}

// RunStats describes one enrichment run and the batch workflows it started
type RunStats struct {
	WorkflowID    string
	RunID         string
	WorkflowType  string
	Status        enums.WorkflowExecutionStatus
	StartTime     time.Time
	CloseTime     *time.Time
	ExecutionTime time.Duration
	Children      []ChildRun
	// Report is set once the run completed
	Report *enrichment.Report
}

// ChildRun is a child EnrichProducts workflow
type ChildRun struct {
	WorkflowID    string
	RunID         string
	Status        enums.WorkflowExecutionStatus
	StartTime     time.Time
	CloseTime     *time.Time
	ExecutionTime time.Duration
}

// Complete reports whether the run and every child are closed
func (s *RunStats) Complete() bool {
	if !isWorkflowComplete(s.Status) {
		return false
	}
	return s.ClosedChildren() == len(s.Children)
}

// ClosedChildren counts the children that are no longer running
func (s *RunStats) ClosedChildren() int {
	n := 0
	for _, child := range s.Children {
		if isWorkflowComplete(child.Status) {
			n++
		}
	}
	return n
}

func collectRunStats(ctx context.Context, c visibilityClient, cfg *Config) (*RunStats, error) {
	query := fmt.Sprintf("WorkflowId = '%s'", cfg.WorkflowID)
	if cfg.RunID != "" {
		query = fmt.Sprintf("%s AND RunId = '%s'", query, cfg.RunID)
	}

	executions, err := listExecutions(ctx, c, cfg, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow: %w", err)
	}
	if len(executions) == 0 {
		return nil, fmt.Errorf("workflow %s not found", cfg.WorkflowID)
	}

	root := executions[0]
	start, closeTime, elapsed := executionTimes(root)
	stats := &RunStats{
		WorkflowID:    root.GetExecution().GetWorkflowId(),
		RunID:         root.GetExecution().GetRunId(),
		WorkflowType:  root.GetType().GetName(),
		Status:        root.GetStatus(),
		StartTime:     start,
		CloseTime:     closeTime,
		ExecutionTime: elapsed,
	}

	childQuery := fmt.Sprintf("ParentWorkflowId = '%s' AND ParentRunId = '%s'", stats.WorkflowID, stats.RunID)
	children, err := listExecutions(ctx, c, cfg, childQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list child workflows: %w", err)
	}
	for _, exec := range children {
		start, closeTime, elapsed := executionTimes(exec)
		stats.Children = append(stats.Children, ChildRun{
			WorkflowID:    exec.GetExecution().GetWorkflowId(),
			RunID:         exec.GetExecution().GetRunId(),
			Status:        exec.GetStatus(),
			StartTime:     start,
			CloseTime:     closeTime,
			ExecutionTime: elapsed,
		})
	}

	if stats.Status == enums.WORKFLOW_EXECUTION_STATUS_COMPLETED {
		resultCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		defer cancel()

		var report enrichment.Report
		if err := c.GetWorkflow(resultCtx, stats.WorkflowID, stats.RunID).Get(resultCtx, &report); err != nil {
			return nil, fmt.Errorf("failed to get workflow result: %w", err)
		}
		stats.Report = &report
	}

	return stats, nil
}

func listExecutions(ctx context.Context, c visibilityClient, cfg *Config, query string) ([]*workflowpb.WorkflowExecutionInfo, error) {
	var (
		executions []*workflowpb.WorkflowExecutionInfo
		pageToken  []byte
	)
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			Query:         query,
			PageSize:      int32(cfg.PageSize), //nolint:gosec,G115 // page size is capped at 1000
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("query timed out after %v, try increasing -query-timeout: %w", cfg.QueryTimeout, err)
			}
			return nil, err
		}

		executions = append(executions, resp.GetExecutions()...)
		pageToken = resp.GetNextPageToken()
		if len(pageToken) == 0 {
			return executions, nil
		}
	}
}

func executionTimes(exec *workflowpb.WorkflowExecutionInfo) (time.Time, *time.Time, time.Duration) {
	start := exec.GetStartTime().AsTime()
	if exec.GetCloseTime() == nil {
		return start, nil, time.Since(start)
	}
	closeTime := exec.GetCloseTime().AsTime()
	return start, &closeTime, closeTime.Sub(start)
}
