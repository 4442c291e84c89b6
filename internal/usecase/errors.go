package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrJobNotFound        = errors.New("job not found")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrRecruiterNotFound  = errors.New("recruiter not found")
	ErrInvalidWeights     = errors.New("weights must sum to 100%")
	ErrMatchRunInProgress = errors.New("match run already in progress")
)
