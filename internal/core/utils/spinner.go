package utils

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/theckman/yacspin"
)

type Spinner struct {
	spinner *yacspin.Spinner
}

func NewSpinner(message string) (*Spinner, error) {
	return NewSpinnerTo(os.Stdout, message)
}

// NewSpinnerTo writes to w, animating only when w is a terminal.
func NewSpinnerTo(w io.Writer, message string) (*Spinner, error) {
	cfg := yacspin.Config{
		Writer:            w,
		NotTTY:            !isTerminal(w),
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[59],
		Suffix:            " " + message,
		SuffixAutoColon:   true,
		ColorAll:          true,
		Colors:            []string{"fgYellow"},
		StopCharacter:     "✓",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "✗",
		StopFailColors:    []string{"fgRed"},
	}

	spinner, err := yacspin.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Spinner{spinner: spinner}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (s *Spinner) Start() error {
	return s.spinner.Start()
}

func (s *Spinner) StopWithSuccess(message string) error {
	s.spinner.StopMessage(message)
	return s.spinner.Stop()
}

func (s *Spinner) StopWithFailure(message string) error {
	s.spinner.StopFailMessage(message)
	return s.spinner.StopFail()
}

// Step runs fn behind a spinner and reports done or the error on w.
func Step(w io.Writer, message, done string, fn func() error) error {
	sp, err := NewSpinnerTo(w, message)
	if err != nil {
		return fn()
	}
	if err := sp.Start(); err != nil {
		return fn()
	}
	if err := fn(); err != nil {
		sp.StopWithFailure(err.Error())
		return err
	}
	sp.StopWithSuccess(done)
	return nil
}
