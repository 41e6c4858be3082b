package statuses

const (
	StatusInProgress = "in_progress"
	StatusEnded      = "ended"

	EndReasonNone        = ""
	EndReasonTwoPasses   = "two_passes"
	EndReasonResignation = "resignation"
)
