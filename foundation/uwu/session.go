// File: session.go
// Title: Interactive Session
// Description: A Session evaluates successive inputs against one evaluator,
//              so variables survive from one input to the next. The REPL and
//              watch mode use it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package uwu

import (
	"io"

	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/utils/stringx"
	"github.com/msto63/uwu/foundation/uwu/evaluator"
)

// Session keeps one environment across inputs
type Session struct {
	engine    *Engine
	output    io.Writer
	evaluator *evaluator.Evaluator
	inputs    int
}

// NewSession starts a session whose output goes to out; nil uses the
// engine's output
func (e *Engine) NewSession(out io.Writer) *Session {
	if out == nil {
		out = e.output
	}
	s := &Session{engine: e, output: out}
	s.evaluator = e.newEvaluator(e.logger, out)
	return s
}

// Eval runs one input. The report's error flag covers this input only.
func (s *Session) Eval(source string) (*Report, error) {
	s.evaluator.ClearErrorFlag()
	s.engine.logger.Debug("Session input", mdwlog.Fields{
		"input": stringx.Truncate(stringx.FirstLine(source), 60, "…"),
		"count": s.inputs + 1,
	})
	report, err := s.engine.execute(ModeRun, source, s.evaluator, s.output)
	if err != nil {
		return nil, err
	}
	s.inputs++
	return report, nil
}

// Reset drops all variables
func (s *Session) Reset() {
	s.evaluator.Reset()
	s.inputs = 0
	s.engine.logger.Debug("Session reset")
}

// Inputs returns the number of inputs evaluated since the last reset
func (s *Session) Inputs() int {
	return s.inputs
}

// Variables returns the names bound in the session, sorted
func (s *Session) Variables() []string {
	return s.evaluator.Globals().Names()
}
