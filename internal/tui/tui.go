// Package tui implements the interactive review screen of confmerge:
// the paths of the override document on the left, a preview of the
// merged result on the right, and per-path merge strategies assignable
// from the keyboard. The screen lets the operator tune the strategy
// table and see its effect before the result is written.
package tui

import (
	"errors"

	"github.com/MKhiriev/go-utils/internal/logger"
	"github.com/MKhiriev/go-utils/merge"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the operator aborted the review with ctrl+c.
// Finishing with "q" is a normal exit and keeps the reviewed result.
var ErrUserQuit = errors.New("обзор прерван")

// WriteFunc persists the merged document to the configured output.
// A nil WriteFunc disables the write hotkey (output goes to stdout
// after the review ends).
type WriteFunc func(doc map[string]any) error

type Review struct {
	base       map[string]any
	override   map[string]any
	strategies merge.StrategyTable
	write      WriteFunc
	logger     *logger.Logger
}

func NewReview(base, override map[string]any, strategies merge.StrategyTable, write WriteFunc, logger *logger.Logger) *Review {
	return &Review{
		base:       base,
		override:   override,
		strategies: strategies,
		write:      write,
		logger:     logger,
	}
}

// Run blocks until the operator finishes or aborts the review. On a
// normal exit it returns the merged document and the strategy table as
// they stood on the screen.
func (r *Review) Run() (map[string]any, merge.StrategyTable, error) {
	model := newReviewModel(r.base, r.override, r.strategies, r.write, r.logger)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, nil, runErr
	}

	result, ok := finalModel.(reviewModel)
	if !ok {
		return nil, nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, nil, ErrUserQuit
	}

	return result.merged, result.strategies, nil
}
