package cmd

import (
	"path/filepath"
	"strings"

	"github.com/abdosharaf9/Simple-Compiler/common"
	"github.com/abdosharaf9/Simple-Compiler/config"
	"github.com/abdosharaf9/Simple-Compiler/display"
	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/abdosharaf9/Simple-Compiler/symtab"
	"github.com/abdosharaf9/Simple-Compiler/syntax"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Phase is a set of compilation phases to run.
type Phase int

// Enumeration of phases.  Tokenization always runs: every other phase
// consumes its tokens.
const (
	PhaseTokens Phase = 1 << iota
	PhaseParse
	PhaseSymbols

	PhaseAll = PhaseTokens | PhaseParse | PhaseSymbols
)

// Compiler represents the state of a single compilation of one source file.
// The phases run strictly in order and the first error stops all later ones.
type Compiler struct {
	// fs is the filesystem sources are read from and outputs written to.
	fs afero.Fs

	cfg *config.Config
	log *zap.Logger

	// render controls whether results are displayed on the terminal.
	render bool

	// ctx is the diagnostic context of the loaded source.
	ctx *report.Context
	src string

	toks   []*syntax.Token
	tree   *syntax.Node
	tables *symtab.Tables
}

// NewCompiler creates a new compiler.
func NewCompiler(fs afero.Fs, cfg *config.Config, log *zap.Logger, render bool) *Compiler {
	return &Compiler{
		fs:     fs,
		cfg:    cfg,
		log:    log,
		render: render,
	}
}

// LoadSource reads the source file at path.
func (c *Compiler) LoadSource(path string) error {
	buff, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return errors.Wrapf(err, "failed to read source file `%s`", path)
	}

	c.src = string(buff)
	c.ctx = &report.Context{FilePath: path, Lines: strings.Split(c.src, "\n")}

	if filepath.Ext(path) != common.SrcFileExtension {
		report.ReportCompileWarning(c.ctx, 0, "source file does not have the `%s` extension", common.SrcFileExtension)
	}

	c.log.Debug("loaded source", zap.String("path", path), zap.Int("lines", len(c.ctx.Lines)))
	return nil
}

// Run runs the requested phases over the loaded source.  It returns whether
// every requested phase succeeded.
func (c *Compiler) Run(phases Phase) bool {
	if !c.Tokenize() {
		return false
	}

	if phases&PhaseTokens != 0 && c.render {
		c.check(display.RenderTokens(c.toks))
	}

	if phases&PhaseParse != 0 {
		if !c.Parse() {
			return false
		}

		if c.cfg.TreePath != "" {
			if err := c.WriteTree(c.cfg.TreePath); err != nil {
				report.ReportStdError("Output Error", err)
				return false
			}
		}
	}

	if phases&PhaseSymbols != 0 {
		if !c.BuildSymbols() {
			return false
		}

		if c.cfg.TablesPath != "" {
			if err := c.ExportTables(c.cfg.TablesPath); err != nil {
				report.ReportStdError("Output Error", err)
				return false
			}
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// Tokenize runs the lexical analysis phase.
func (c *Compiler) Tokenize() bool {
	report.ReportPhase("Lexical Analysis")

	toks, err := syntax.Tokenize(c.src)
	if err != nil {
		c.fail(err)
		return false
	}

	c.toks = toks
	c.log.Debug("tokenized source", zap.Int("tokens", len(toks)))
	return true
}

// Parse runs the parsing phase.  Tokenize must be run before this.
func (c *Compiler) Parse() bool {
	report.ReportPhase("Parsing")

	tree, err := syntax.Parse(c.toks)
	if err != nil {
		c.fail(err)
		return false
	}

	c.tree = tree
	c.log.Debug("parsed source", zap.Int("statements", len(tree.Children)))

	report.ReportInfo("Syntax", "This is a valid syntax!")
	if c.render {
		c.check(display.RenderParseTree(tree))
	}

	return true
}

// BuildSymbols runs the symbol table phase.  Tokenize must be run before
// this; Parse need not be.
func (c *Compiler) BuildSymbols() bool {
	report.ReportPhase("Symbol Table")

	tables, err := symtab.BuildSymbolTables(c.toks, c.cfg.Symbols)
	if err != nil {
		c.fail(err)
		return false
	}

	for _, redecl := range tables.Redeclarations {
		report.ReportCompileWarning(
			c.ctx,
			redecl.Line,
			"identifier <%s> is already declared: treating `%s %s` as a reference",
			redecl.Name, redecl.DataType, redecl.Name,
		)
	}

	c.tables = tables
	c.log.Debug("built symbol tables", zap.Int("identifiers", tables.Base.Len()), zap.Int("tree-height", tables.Tree.Height()))

	if c.render {
		c.check(display.RenderSymbolTable("Unordered Symbol Table", tables.Base))
		c.check(display.RenderSymbolTable("Ordered Symbol Table", tables.Ordered))
		c.check(display.RenderSearchTree(tables.Tree))
		c.check(display.RenderHashIndex(tables.Hash))
	}

	return true
}

// -----------------------------------------------------------------------------

// WriteTree writes the parse tree to path.
func (c *Compiler) WriteTree(path string) error {
	f, err := c.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create tree file `%s`", path)
	}
	defer f.Close()

	if _, err := c.tree.WriteTo(f); err != nil {
		return errors.Wrapf(err, "failed to write tree file `%s`", path)
	}

	c.log.Debug("wrote parse tree", zap.String("path", path))
	return nil
}

// ExportTables writes a YAML snapshot of the symbol tables to path.
func (c *Compiler) ExportTables(path string) error {
	f, err := c.fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create tables file `%s`", path)
	}
	defer f.Close()

	if err := c.tables.EncodeYAML(f); err != nil {
		return errors.Wrapf(err, "failed to write tables file `%s`", path)
	}

	c.log.Debug("exported symbol tables", zap.String("path", path))
	return nil
}

// Tokens returns the tokens produced by Tokenize.
func (c *Compiler) Tokens() []*syntax.Token {
	return c.toks
}

// Tree returns the parse tree produced by Parse.
func (c *Compiler) Tree() *syntax.Node {
	return c.tree
}

// Tables returns the symbol tables produced by BuildSymbols.
func (c *Compiler) Tables() *symtab.Tables {
	return c.tables
}

// fail reports the error that stopped a phase.  Phases only ever fail on
// bad source text: any other error is an internal compiler error.
func (c *Compiler) fail(err error) {
	cerr, ok := err.(*report.CompileError)
	if !ok {
		report.ReportICE("%s", err)
		return
	}

	c.log.Debug("compilation stopped", zap.Stringer("kind", cerr.Kind), zap.Int("line", cerr.Line))
	report.ReportCompileError(c.ctx, cerr)
}

// check reports a display error.  Display errors never stop compilation.
func (c *Compiler) check(err error) {
	if err != nil {
		report.ReportStdError("Display Error", err)
	}
}
