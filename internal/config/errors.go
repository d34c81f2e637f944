package config

import "errors"

var (
	// ErrInvalidConfig indicates a value outside the range the toy can run with.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrParse indicates a file that is not valid YAML for Config.
	ErrParse = errors.New("config: cannot parse")
)
