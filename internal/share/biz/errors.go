package biz

import (
	"errors"
	"fmt"
)

// Stage identifies where in the upload pipeline a failure originated.
type Stage string

const (
	StageValidation Stage = "validation"
	StageStorage    Stage = "storage"
	StageGrant      Stage = "grant"
	StageRender     Stage = "render"
	StageMetadata   Stage = "metadata"
)

// StageError is the terminal failure of one pipeline run, tagged with the
// originating stage. Message is safe to show to the caller; Err carries the
// backend detail for logs only.
type StageError struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed at %s stage: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("upload failed at %s stage: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func newStageError(stage Stage, message string, err error) *StageError {
	return &StageError{Stage: stage, Message: message, Err: err}
}

// StageOf returns the failed stage, or an empty Stage for non-pipeline errors.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

// IsStage reports whether err is a pipeline failure at the given stage.
func IsStage(err error, stage Stage) bool {
	return StageOf(err) == stage
}

// UserMessage returns the caller-safe message of a pipeline error, falling
// back to a generic one for anything else.
func UserMessage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Message
	}
	return "upload failed"
}
