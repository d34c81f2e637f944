package synth

import "errors"

var (
	// ErrNoVoice indicates a strike on a voice index the bank does not have.
	ErrNoVoice = errors.New("synth: no such voice")

	// ErrRenderCanceled indicates an offline render stopped before its end.
	ErrRenderCanceled = errors.New("synth: render canceled")
)
