package codegen

import (
	"github.com/quadem/paramgen/internal/codegen/cheader"
	"github.com/quadem/paramgen/internal/codegen/cppsource"
	"github.com/quadem/paramgen/internal/codegen/epicsdb"
	"github.com/quadem/paramgen/internal/config"
)

// DefaultRegistry holds the four driver artifacts in their fixed emission order
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(epicsdb.Name, func(cfg *config.Config) Generator {
		return epicsdb.NewGenerator(cfg.Database)
	})

	DefaultRegistry.Register(cheader.StringsName, func(cfg *config.Config) Generator {
		return cheader.NewStringGenerator()
	})

	DefaultRegistry.Register(cheader.MembersName, func(cfg *config.Config) Generator {
		return cheader.NewMemberGenerator()
	})

	DefaultRegistry.Register(cppsource.Name, func(cfg *config.Config) Generator {
		return cppsource.NewGenerator(cfg.Registration)
	})
}
