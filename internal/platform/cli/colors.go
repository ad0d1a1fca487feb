package cli

import (
	"github.com/fatih/color"

	"hashcrack/internal/core/domain"
)

var (
	colorSuccess = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatStatusWithColor(status domain.OutcomeStatus) string {
	switch status {
	case domain.OutcomeFound:
		return colorSuccess(string(status))
	case domain.OutcomeCancelled:
		return colorWarn(string(status))
	case domain.OutcomeExhausted, domain.OutcomeFailed:
		return colorError(string(status))
	default:
		return colorError("error")
	}
}
