package report

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileErrorMessages(t *testing.T) {
	for _, test := range []struct {
		err  *CompileError
		kind ErrorKind
		msg  string
	}{
		{RaiseLexical(3, "@"), KindLexical, "Lexical error on line 3: unrecognized token: <@>"},
		{RaiseSyntax(1, ";", "term", "SEMICOLON"), KindSyntax, "Syntax error on line 1: unexpected <;>: expected <term> but found <SEMICOLON>"},
		{RaiseSemantic(2, "x"), KindSemantic, "Semantic error on line 2: data type missing for identifier <x>"},
		{RaiseSyntax(0, "end of input", "SEMICOLON", "EOF"), KindSyntax, "Syntax error: unexpected <end of input>: expected <SEMICOLON> but found <EOF>"},
	} {
		assert.Equal(t, test.kind, test.err.Kind)
		assert.Equal(t, test.msg, test.err.Error())
		assert.True(t, IsKind(test.err, test.kind))
	}

	assert.False(t, IsKind(errors.New("plain"), KindSyntax))
	assert.False(t, IsKind(RaiseLexical(1, "$"), KindSemantic))
}

func TestCatchErrorsRecoversCompileErrors(t *testing.T) {
	run := func() (err error) {
		defer CatchErrors(&err)
		panic(RaiseSemantic(4, "y"))
	}

	err := run()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindSemantic))
	assert.Equal(t, "y", err.(*CompileError).Lexeme)
}

func TestCatchErrorsRepanicsOtherValues(t *testing.T) {
	run := func() (err error) {
		defer CatchErrors(&err)
		panic("boom")
	}

	assert.PanicsWithValue(t, "boom", func() { _ = run() })
}

func TestReporterCounts(t *testing.T) {
	InitReporter(LogLevelSilent)
	defer InitReporter(LogLevelVerbose)

	ctx := &Context{FilePath: "main.abdo", Lines: []string{"x = 5;"}}
	assert.False(t, AnyErrors())

	ReportCompileWarning(ctx, 1, "identifier <%s> redeclared", "x")
	assert.Equal(t, 1, WarningCount())
	assert.False(t, AnyErrors())

	ReportCompileError(ctx, RaiseSemantic(1, "x"))
	assert.True(t, AnyErrors())
}

func TestReportFatalExits(t *testing.T) {
	InitReporter(LogLevelSilent)
	defer InitReporter(LogLevelVerbose)

	saved := exit
	defer func() { exit = saved }()

	code := 0
	exit = func(c int) { code = c }

	ReportFatal("missing %s", "file")
	assert.Equal(t, 1, code)
}

func TestLogLevelFromName(t *testing.T) {
	level, ok := LogLevelFromName("warn")
	require.True(t, ok)
	assert.Equal(t, LogLevelWarn, level)

	_, ok = LogLevelFromName("loud")
	assert.False(t, ok)
}

func TestCountLabel(t *testing.T) {
	for _, test := range []struct {
		n      int
		noun   string
		suffix string
	}{
		{0, "error", " errors"},
		{1, "error", " error"},
		{2, "warning", " warnings"},
	} {
		label := countLabel(test.n, test.noun, errorColor)
		assert.True(t, strings.HasSuffix(label, test.suffix), label)
		assert.Contains(t, label, strconv.Itoa(test.n))
	}
}
