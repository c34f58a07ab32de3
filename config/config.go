package config

import (
	"os"
	"path/filepath"

	"github.com/abdosharaf9/Simple-Compiler/common"
	"github.com/abdosharaf9/Simple-Compiler/report"
	"github.com/abdosharaf9/Simple-Compiler/symtab"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Config is the loaded project configuration.
type Config struct {
	// LogLevel is the name of the reporter log level.
	LogLevel string

	Symbols symtab.Options

	// TreePath is where the parse tree is written.  Empty means the tree is
	// not written.
	TreePath string

	// TablesPath is where the YAML snapshot of the symbol tables is written.
	// Empty means no snapshot is written.
	TablesPath string
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		LogLevel: "verbose",
		Symbols:  symtab.DefaultOptions(),
		TreePath: "parse_tree.txt",
	}
}

// Load reads the configuration file at path.  A missing file yields the
// default configuration.  Keys missing from the file keep their defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	buff, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.Wrapf(err, "failed to read config file `%s`", path)
	}

	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file `%s`", path)
	}

	if err := applyTree(cfg, tree); err != nil {
		return nil, errors.Wrapf(err, "invalid config file `%s`", path)
	}

	return cfg, nil
}

// applyTree overwrites the fields of cfg that are present in tree.
func applyTree(cfg *Config, tree *toml.Tree) error {
	if err := getString(tree, "compiler.log-level", &cfg.LogLevel); err != nil {
		return err
	}

	if _, ok := report.LogLevelFromName(cfg.LogLevel); !ok {
		return errors.Errorf("unknown log level: `%s`", cfg.LogLevel)
	}

	if err := getInt(tree, "symbols.base-address", &cfg.Symbols.BaseAddress); err != nil {
		return err
	}

	if cfg.Symbols.BaseAddress < 0 {
		return errors.New("symbols.base-address must not be negative")
	}

	if err := getInt(tree, "symbols.address-step", &cfg.Symbols.AddressStep); err != nil {
		return err
	}

	if cfg.Symbols.AddressStep <= 0 {
		return errors.New("symbols.address-step must be positive")
	}

	if tree.Has("symbols.renumber-ordered") {
		renumber, ok := tree.Get("symbols.renumber-ordered").(bool)
		if !ok {
			return errors.New("symbols.renumber-ordered must be a boolean")
		}

		cfg.Symbols.RenumberOrdered = renumber
	}

	if err := getString(tree, "output.tree-path", &cfg.TreePath); err != nil {
		return err
	}

	return getString(tree, "output.tables-path", &cfg.TablesPath)
}

// getString stores the string at key into dest if the key exists.
func getString(tree *toml.Tree, key string, dest *string) error {
	if !tree.Has(key) {
		return nil
	}

	value, ok := tree.Get(key).(string)
	if !ok {
		return errors.Errorf("%s must be a string", key)
	}

	*dest = value
	return nil
}

// getInt stores the integer at key into dest if the key exists.
func getInt(tree *toml.Tree, key string, dest *int) error {
	if !tree.Has(key) {
		return nil
	}

	value, ok := tree.Get(key).(int64)
	if !ok {
		return errors.Errorf("%s must be an integer", key)
	}

	*dest = int(value)
	return nil
}

// -----------------------------------------------------------------------------

// tomlConfigFile represents the config file as it is encoded in TOML.
type tomlConfigFile struct {
	Compiler *tomlCompiler `toml:"compiler"`
	Symbols  *tomlSymbols  `toml:"symbols"`
	Output   *tomlOutput   `toml:"output"`
}

type tomlCompiler struct {
	LogLevel string `toml:"log-level"`
}

type tomlSymbols struct {
	BaseAddress     int  `toml:"base-address"`
	AddressStep     int  `toml:"address-step"`
	RenumberOrdered bool `toml:"renumber-ordered"`
}

type tomlOutput struct {
	TreePath   string `toml:"tree-path"`
	TablesPath string `toml:"tables-path"`
}

// Init writes a default config file into dir.  It refuses to overwrite an
// existing file.  It returns the path of the written file.
func Init(fs afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	_, err := fs.Stat(path)
	if err == nil {
		return "", errors.New("config file already exists")
	}

	if !os.IsNotExist(err) {
		return "", errors.Wrap(err, "config file error")
	}

	f, err := fs.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "error creating config file")
	}
	defer f.Close()

	cfg := Default()
	file := &tomlConfigFile{
		Compiler: &tomlCompiler{LogLevel: cfg.LogLevel},
		Symbols: &tomlSymbols{
			BaseAddress:     cfg.Symbols.BaseAddress,
			AddressStep:     cfg.Symbols.AddressStep,
			RenumberOrdered: cfg.Symbols.RenumberOrdered,
		},
		Output: &tomlOutput{TreePath: cfg.TreePath, TablesPath: cfg.TablesPath},
	}

	if err := toml.NewEncoder(f).Encode(file); err != nil {
		return "", errors.Wrap(err, "error encoding TOML")
	}

	return path, nil
}
