package cmdutil

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gitlab-tools/mr-creator/internal/config"
	"github.com/gitlab-tools/mr-creator/internal/git"
	"github.com/gitlab-tools/mr-creator/internal/glab"
	"github.com/gitlab-tools/mr-creator/internal/logging"
	"github.com/gitlab-tools/mr-creator/internal/run"
	"github.com/gitlab-tools/mr-creator/internal/workflow"
	"github.com/gitlab-tools/mr-creator/pkg/iostreams"
)

// Factory provides shared dependencies for commands and MCP tools.
// Tests substitute the Config and Workflow closures.
type Factory struct {
	IOStreams *iostreams.IOStreams
	Version   string
	Logger    *zap.Logger

	Config   func() (*config.Config, error)
	Workflow func() (*workflow.Workflow, error)
}

// NewFactory creates a Factory with default implementations. Configuration
// is loaded once and shared across calls.
func NewFactory() *Factory {
	f := &Factory{
		IOStreams: iostreams.System(),
	}

	var (
		cfgOnce sync.Once
		cfg     *config.Config
	)
	f.Config = func() (*config.Config, error) {
		cfgOnce.Do(func() {
			cfg = config.Load()
		})
		return cfg, nil
	}

	f.Workflow = func() (*workflow.Workflow, error) {
		cfg, err := f.Config()
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		if f.Logger == nil {
			f.Logger = logging.New(cfg.LogLevel)
		}
		runner := run.ExecRunner{}
		return workflow.New(
			cfg,
			git.NewClient(cfg.ProjectDir, cfg.Remote, runner),
			glab.NewClient(cfg.ProjectDir, runner),
			f.Logger,
		), nil
	}

	return f
}
