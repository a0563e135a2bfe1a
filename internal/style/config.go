// Package style holds the switches selecting which redundant-parenthesis
// categories the rewriter removes. A Config value is immutable once built
// and safe to share across concurrent rewrites.
package style

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config mirrors the flag set of the widely used unnecessary-parentheses
// linter rule. Each flag enables one removal category; every flag is on by
// default.
type Config struct {
	// Ident enables removal around a bare identifier: (x) -> x.
	Ident bool `toml:"ident"`

	// Literal flags, one per literal kind.
	NumInt        bool `toml:"num_int"`
	NumDouble     bool `toml:"num_double"`
	NumLong       bool `toml:"num_long"`
	NumFloat      bool `toml:"num_float"`
	StringLiteral bool `toml:"string_literal"`
	LiteralNull   bool `toml:"literal_null"`
	LiteralTrue   bool `toml:"literal_true"`
	LiteralFalse  bool `toml:"literal_false"`

	// Assign covers plain assignment values and variable initializers;
	// Expr covers return expressions.
	Assign bool `toml:"assign"`
	Expr   bool `toml:"expr"`

	// Compound assignment flags, one per operator.
	BitAndAssign        bool `toml:"bit_and_assign"`
	BitOrAssign         bool `toml:"bit_or_assign"`
	BitXorAssign        bool `toml:"bit_xor_assign"`
	ShiftLeftAssign     bool `toml:"shift_left_assign"`
	ShiftRightAssign    bool `toml:"shift_right_assign"`
	BitShiftRightAssign bool `toml:"bit_shift_right_assign"` // unsigned >>>=
	PlusAssign          bool `toml:"plus_assign"`
	MinusAssign         bool `toml:"minus_assign"`
	StarAssign          bool `toml:"star_assign"`
	DivAssign           bool `toml:"div_assign"`
	ModAssign           bool `toml:"mod_assign"`
}

// Default returns the configuration with every category enabled.
func Default() Config {
	return Config{
		Ident:               true,
		NumInt:              true,
		NumDouble:           true,
		NumLong:             true,
		NumFloat:            true,
		StringLiteral:       true,
		LiteralNull:         true,
		LiteralTrue:         true,
		LiteralFalse:        true,
		Assign:              true,
		Expr:                true,
		BitAndAssign:        true,
		BitOrAssign:         true,
		BitXorAssign:        true,
		ShiftLeftAssign:     true,
		ShiftRightAssign:    true,
		BitShiftRightAssign: true,
		PlusAssign:          true,
		MinusAssign:         true,
		StarAssign:          true,
		DivAssign:           true,
		ModAssign:           true,
	}
}

// Load decodes a TOML style file over the defaults, so absent keys keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("style: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("style: unknown key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
