package credential

import (
	"github.com/shandysiswandi/pwstore/internal/credential/inbound"
	"github.com/shandysiswandi/pwstore/internal/credential/usecase"
	"github.com/shandysiswandi/pwstore/internal/pkg/clock"
	"github.com/shandysiswandi/pwstore/internal/pkg/config"
	"github.com/shandysiswandi/pwstore/internal/pkg/hash"
	"github.com/shandysiswandi/pwstore/internal/pkg/instrument"
	"github.com/shandysiswandi/pwstore/internal/pkg/validator"
	"github.com/spf13/cobra"
)

type Dependency struct {
	Root       *cobra.Command             `validate:"required"`
	Hasher     *hash.PBKDF2               `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc, err := usecase.New(usecase.Dependency{
		Hasher:       dep.Hasher,
		Validator:    dep.Validator,
		Clock:        dep.Clock,
		Instrument:   dep.Instrument,
		MaxGoroutine: dep.Config.GetInt("worker.max_goroutine"),
	})
	if err != nil {
		return err
	}

	inbound.RegisterCLIEndpoint(dep.Root, uc)

	return nil
}
