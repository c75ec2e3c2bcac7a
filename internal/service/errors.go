package service

import "errors"

var (
	ErrNoQuestions = errors.New("no questions found")
)
