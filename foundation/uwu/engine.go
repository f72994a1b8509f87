// File: engine.go
// Title: uwu Pipeline Engine
// Description: Drives the tokenizer, parser and evaluator for one source text
//              and writes listings, program output and diagnostics to the
//              configured sink. Every run gets its own run ID, a timer and a
//              Report summarising what happened.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package uwu

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/uwu/foundation/core/error"
	mdwlog "github.com/msto63/uwu/foundation/core/log"
	"github.com/msto63/uwu/foundation/uwu/ast"
	"github.com/msto63/uwu/foundation/uwu/evaluator"
	"github.com/msto63/uwu/foundation/uwu/lexer"
	"github.com/msto63/uwu/foundation/uwu/parser"
	"github.com/msto63/uwu/foundation/uwu/result"
)

// Messages printed by Check
const (
	CheckSucceeded = "Codigo compilado exitosamente"
	CheckFailed    = "El codigo presenta errores"
)

// DefaultMaxSourceBytes is the largest source accepted when Options leaves it unset
const DefaultMaxSourceBytes = 1 << 20

// Mode selects how far a run takes the source through the pipeline
type Mode int

const (
	ModeTokenize Mode = iota
	ModeParse
	ModeRun
	ModeCheck
)

// String returns the mode name used in logs and by the CLI
func (m Mode) String() string {
	switch m {
	case ModeTokenize:
		return "tokenize"
	case ModeParse:
		return "parse"
	case ModeRun:
		return "run"
	case ModeCheck:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Diagnostic is a lexical, syntax or runtime error
type Diagnostic interface {
	error
	SourceLine() int
	Code() mdwerror.Code
	AsError() *mdwerror.Error
}

// Report summarises one pipeline run
type Report struct {
	RunID       string
	Mode        Mode
	Tokens      []lexer.Token
	Statements  []ast.Expr
	Values      []evaluator.Value
	Diagnostics []Diagnostic
	ErrorFlag   bool
	Duration    time.Duration
}

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger

	// Output receives listings, impwimir output and diagnostics; nil discards
	Output io.Writer

	MaxLoopIterations int
	MaxSourceBytes    int

	// EchoResults writes the value of every statement that is not nya
	EchoResults bool
}

// Engine runs source texts through the pipeline. It holds no state between
// runs; use a Session to keep variables across inputs.
type Engine struct {
	logger  *mdwlog.Logger
	output  io.Writer
	options Options
}

// New creates an engine with the given options
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	if opts.MaxLoopIterations <= 0 {
		opts.MaxLoopIterations = evaluator.DefaultMaxLoopIterations
	}
	if opts.MaxSourceBytes <= 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}

	logger := opts.Logger.WithField("component", "uwu-engine")
	logger.Debug("uwu engine initialized", mdwlog.Fields{
		"maxLoopIterations": opts.MaxLoopIterations,
		"maxSourceBytes":    opts.MaxSourceBytes,
		"echoResults":       opts.EchoResults,
	})

	return &Engine{
		logger:  logger,
		output:  opts.Output,
		options: opts,
	}
}

// Tokenize writes the token listing of source
func (e *Engine) Tokenize(source string) (*Report, error) {
	return e.Execute(ModeTokenize, source)
}

// Parse writes the parsed statements of source in prefix form
func (e *Engine) Parse(source string) (*Report, error) {
	return e.Execute(ModeParse, source)
}

// Run evaluates source. Evaluation is skipped when tokenizing or parsing
// reported diagnostics.
func (e *Engine) Run(source string) (*Report, error) {
	return e.Execute(ModeRun, source)
}

// Check runs source without output and writes CheckSucceeded or CheckFailed
func (e *Engine) Check(source string) (*Report, error) {
	return e.Execute(ModeCheck, source)
}

// Execute runs source in the given mode with a fresh evaluator. The error
// return is reserved for driver failures such as oversized input; problems
// in the source itself are reported as diagnostics.
func (e *Engine) Execute(mode Mode, source string) (*Report, error) {
	return e.execute(mode, source, nil, e.output)
}

func (e *Engine) execute(mode Mode, source string, ev *evaluator.Evaluator, out io.Writer) (*Report, error) {
	if len(source) > e.options.MaxSourceBytes {
		return nil, mdwerror.Newf("source is %d bytes, limit is %d", len(source), e.options.MaxSourceBytes).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("uwu." + mode.String()).
			WithDetail("limit", e.options.MaxSourceBytes)
	}

	r := &run{
		report: &Report{RunID: uuid.NewString(), Mode: mode},
		out:    out,
	}
	r.logger = e.logger.WithRunID(r.report.RunID)
	timer := r.logger.StartTimer("uwu." + mode.String())

	switch mode {
	case ModeTokenize:
		r.tokenize(source)
	case ModeParse:
		r.parse(source)
	case ModeRun, ModeCheck:
		if mode == ModeCheck {
			r.out = io.Discard
		}
		if ev == nil {
			ev = e.newEvaluator(r.logger, r.out)
		}
		r.run(source, ev, e.options.EchoResults && mode == ModeRun)
		if mode == ModeCheck {
			r.checkVerdict(out)
		}
	default:
		return nil, mdwerror.Newf("unknown mode %s", mode).WithCode(mdwerror.CodeInvalidInput)
	}

	r.report.Duration = timer.
		WithField("bytes", len(source)).
		WithField("diagnostics", len(r.report.Diagnostics)).
		WithField("error_flag", r.report.ErrorFlag).
		Stop()
	return r.report, nil
}

func (e *Engine) newEvaluator(logger *mdwlog.Logger, out io.Writer) *evaluator.Evaluator {
	return evaluator.New(evaluator.Options{
		Logger:            logger,
		Output:            out,
		MaxLoopIterations: e.options.MaxLoopIterations,
	})
}

// run holds the state of a single pipeline pass
type run struct {
	report *Report
	logger *mdwlog.Logger
	out    io.Writer
}

func (r *run) tokenize(source string) {
	for _, item := range lexer.New(lexer.Options{Logger: r.logger}).Scan(source) {
		tok, ok := item.Value()
		if !ok {
			diag, _ := item.Err()
			r.diagnose(diag)
			continue
		}
		r.report.Tokens = append(r.report.Tokens, tok)
		if tok.Kind != lexer.Eol {
			r.writeln(tok.String())
		}
	}
}

// scan tokenizes source and reports lexical diagnostics
func (r *run) scan(source string) []lexer.Token {
	items := lexer.New(lexer.Options{Logger: r.logger}).Scan(source)
	for _, diag := range result.Errors(items) {
		r.diagnose(diag)
	}
	r.report.Tokens = result.Values(items)
	return r.report.Tokens
}

func (r *run) parse(source string) {
	tokens := r.scan(source)
	for _, item := range parser.New(parser.Options{Logger: r.logger}).Parse(tokens) {
		stmt, ok := item.Value()
		if !ok {
			diag, _ := item.Err()
			r.diagnose(diag)
			continue
		}
		r.report.Statements = append(r.report.Statements, stmt)
		r.writeln(ast.Print(stmt))
	}
}

func (r *run) run(source string, ev *evaluator.Evaluator, echo bool) {
	tokens := r.scan(source)
	items := parser.New(parser.Options{Logger: r.logger}).Parse(tokens)
	for _, diag := range result.Errors(items) {
		r.diagnose(diag)
	}
	r.report.Statements = result.Values(items)

	if r.report.ErrorFlag {
		r.logger.Debug("Evaluation skipped", mdwlog.Fields{"diagnostics": len(r.report.Diagnostics)})
		return
	}

	for _, stmt := range r.report.Statements {
		item := ev.EvaluateStatement(stmt)
		v, ok := item.Value()
		if !ok {
			diag, _ := item.Err()
			r.diagnose(diag)
			continue
		}
		r.report.Values = append(r.report.Values, v)
		if echo && !v.IsNil() {
			r.writeln(v.String())
		}
	}
}

func (r *run) checkVerdict(out io.Writer) {
	verdict := CheckSucceeded
	if r.report.ErrorFlag {
		verdict = CheckFailed
	}
	_, _ = io.WriteString(out, verdict+"\n")
}

func (r *run) diagnose(d Diagnostic) {
	r.report.Diagnostics = append(r.report.Diagnostics, d)
	r.report.ErrorFlag = true
	r.writeln(d.Error())
	r.logger.LogError(d.AsError().WithRunID(r.report.RunID))
}

func (r *run) writeln(s string) {
	_, _ = io.WriteString(r.out, s+"\n")
}
