package quiz

import "errors"

// ErrInvalidChoice indicates a choice index outside the current question's range.
var ErrInvalidChoice = errors.New("invalid choice")

// ErrLengthMismatch indicates the answers do not line up with the questions.
var ErrLengthMismatch = errors.New("answers length does not match questions")

// ErrCompleted indicates an operation on a session that has already completed.
var ErrCompleted = errors.New("quiz session already completed")

// ErrNoQuestions indicates a session was started without questions.
var ErrNoQuestions = errors.New("no questions")

// ErrAborted indicates the user left the quiz before completing it.
var ErrAborted = errors.New("quiz aborted")
