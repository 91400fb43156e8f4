package app

import (
	"fmt"

	"github.com/shandysiswandi/pwstore/internal/credential"
)

func (a *App) initModules() error {
	if err := credential.New(credential.Dependency{
		Root:       a.root,
		Hasher:     a.hasher,
		Config:     a.config,
		Instrument: a.ins,
		Clock:      a.clock,
		Validator:  a.validator,
	}); err != nil {
		return fmt.Errorf("failed to init credential module: %w", err)
	}

	return nil
}
