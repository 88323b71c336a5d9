// Package cli provides the lvroute command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/logger"
	"github.com/katalvlaran/lvroute/logistics"
)

// EnvPrefix prefixes the environment variables bound to the global flags,
// e.g. LVROUTE_CONFIG and LVROUTE_LOG_LEVEL.
const EnvPrefix = "LVROUTE"

// CLI holds the command tree and the session state it operates on.
type CLI struct {
	root   *cobra.Command
	v      *viper.Viper
	log    *logrus.Logger
	svc    *logistics.Service
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// bindErr is reported by the first command run.
	bindErr error
}

// New returns a CLI bound to the process streams.
func New() *CLI {
	return NewWithIO(os.Stdin, os.Stdout, os.Stderr)
}

// NewWithIO returns a CLI reading from in and writing to out and errOut.
func NewWithIO(in io.Reader, out, errOut io.Writer) *CLI {
	c := &CLI{v: viper.New(), in: in, out: out, errOut: errOut}
	c.setupCommands()

	return c
}

// Execute runs the command line args (without the program name).
func (c *CLI) Execute(args []string) error {
	c.root.SetArgs(args)

	return c.root.Execute()
}

// Service returns the session state, or nil before a command has run.
func (c *CLI) Service() *logistics.Service { return c.svc }

func (c *CLI) setupCommands() {
	c.root = &cobra.Command{
		Use:   "lvroute",
		Short: "Shortest-route planning for a warehouse delivery network",
		Long: `lvroute plans deliveries over an undirected road network.

Load a scenario with --config to seed locations, roads and inventory, then
query routes, inspect stock, dispatch items or open an interactive shell.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.initialize,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	c.root.SetIn(c.in)
	c.root.SetOut(c.out)
	c.root.SetErr(c.errOut)

	flags := c.root.PersistentFlags()
	flags.String("config", "", "scenario file (YAML)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error); overrides the scenario")
	flags.String("origin", "", "origin location; overrides the scenario")
	if err := c.v.BindPFlags(flags); err != nil {
		c.bindErr = fmt.Errorf("cli: bind flags: %w", err)
	}

	c.v.SetEnvPrefix(EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.root.AddCommand(
		c.newNetworkCmd(),
		c.newRouteCmd(),
		c.newReachableCmd(),
		c.newInventoryCmd(),
		c.newDispatchCmd(),
		c.newShellCmd(),
	)
}

// initialize loads the scenario and builds the session before any command.
func (c *CLI) initialize(_ *cobra.Command, _ []string) error {
	if c.bindErr != nil {
		return c.bindErr
	}

	cfg := &config.Config{}
	if path := c.v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.Log.Level
	if l := c.v.GetString("log-level"); l != "" {
		level = l
	}
	c.log = logger.New(level, c.errOut)

	svc, err := cfg.Build(c.log)
	if err != nil {
		return err
	}
	if origin := c.v.GetString("origin"); origin != "" {
		if err = svc.SetOrigin(origin); err != nil {
			return err
		}
	}
	c.svc = svc

	return nil
}

var (
	headline = color.New(color.FgCyan, color.Bold)
	success  = color.New(color.FgGreen)
	warning  = color.New(color.FgYellow)
	failure  = color.New(color.FgRed)
)
