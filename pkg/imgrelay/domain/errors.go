package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error coming out of a stage wraps exactly one of them, so callers can tell
// what went wrong with errors.Is.
var (
	ErrNetwork    = errors.New("network error")
	ErrParse      = errors.New("parse error")
	ErrFilesystem = errors.New("filesystem error")
)

var (
	ErrImageNotFound    = fmt.Errorf("%w: no image with a data URI found", ErrParse)
	ErrMalformedDataURI = fmt.Errorf("%w: malformed data URI", ErrParse)
	ErrEmptyPayload     = fmt.Errorf("%w: empty image payload", ErrParse)
)

type Stage string

const (
	StageFetch   = Stage("fetch")
	StageExtract = Stage("extract")
	StageSave    = Stage("save")
	StageInfer   = Stage("infer")
	StageSubmit  = Stage("submit")
)

// StageError tells which stage of the pipeline failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (s *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %s", s.Stage, s.Err)
}

func (s *StageError) Unwrap() error {
	return s.Err
}
