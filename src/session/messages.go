package session

import (
	"errors"

	"github.com/iafilius/WaveformPlotter/src/render"
	"github.com/iafilius/WaveformPlotter/src/waveform"
)

// Action names a user-triggered operation.
type Action int

const (
	ActionAddStandard Action = iota
	ActionAddPoint
	ActionCommitCustom
	ActionGenerate
)

func (a Action) String() string {
	switch a {
	case ActionAddStandard:
		return "add standard waveform"
	case ActionAddPoint:
		return "add point"
	case ActionCommitCustom:
		return "add custom waveform"
	case ActionGenerate:
		return "generate plot"
	default:
		return "unknown action"
	}
}

// ActionError ties a rejection to the action that caused it.
type ActionError struct {
	Action Action
	Err    error
}

func (e *ActionError) Error() string { return e.Action.String() + ": " + e.Err.Error() }

func (e *ActionError) Unwrap() error { return e.Err }

// Dialog titles and texts shown to the user.
const (
	TitleError   = "Error"
	TitleSuccess = "Success"

	MsgStandardAdded = "Standard waveform added!"
	MsgCustomAdded   = "Custom waveform added!"

	msgInvalidInput      = "Invalid input!"
	msgInvalidPoint      = "Invalid time or value!"
	msgInvalidRange      = "Period must be positive and Stop Time must be greater than Start Time!"
	msgInsufficientPoint = "Need at least 2 points!"
	msgNoWaveforms       = "No waveforms to plot!"
	msgRenderFailed      = "Could not draw the plot!"
)

// UserMessage maps an error returned by a Session method to the dialog text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *ActionError
	action := Action(-1)
	if errors.As(err, &ae) {
		action = ae.Action
	}
	switch {
	case errors.Is(err, render.ErrNoWaveforms):
		return msgNoWaveforms
	case errors.Is(err, waveform.ErrInsufficientPoints):
		return msgInsufficientPoint
	case errors.Is(err, waveform.ErrInvalidRange):
		return msgInvalidRange
	case errors.Is(err, waveform.ErrInvalidNumber):
		if action == ActionAddPoint {
			return msgInvalidPoint
		}
		return msgInvalidInput
	case action == ActionGenerate:
		return msgRenderFailed
	default:
		return err.Error()
	}
}
