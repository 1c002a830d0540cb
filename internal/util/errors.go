package util

import "errors"

var (
	ErrExamNotFound         = errors.New("exam not found")
	ErrExamNotPublished     = errors.New("exam not published or not accessible")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrSubmissionCompleted  = errors.New("submission already completed")
	ErrSpeakingGroupMissing = errors.New("exam has no speaking group")
	ErrWindowNotFound       = errors.New("time window not found")
	ErrUnsupportedAudioType = errors.New("unsupported audio file type")
)
