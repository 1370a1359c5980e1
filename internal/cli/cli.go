// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jmcdonald/jarls/internal/adapters/ziparchiver"
	"github.com/jmcdonald/jarls/internal/config"
	"github.com/jmcdonald/jarls/internal/lister"
	"github.com/jmcdonald/jarls/internal/logging"
	"github.com/jmcdonald/jarls/internal/ports"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() string
	DefaultConfig() *config.Config
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	Archiver  ports.Archiver

	// Color functions (can be disabled for testing)
	green func(a ...interface{}) string
	red   func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		red:     errorColor(isTerminal(os.Stderr.Fd())).SprintFunc(),
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// errorColor returns the color for stderr diagnostics. color.NoColor only
// reflects stdout, so a redirected stderr must be checked on its own.
func errorColor(stderrIsTerminal bool) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if !stderrIsTerminal {
		c.DisableColor()
	}
	return c
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) {},
		green:   noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() string            { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		c.RunList(nil)
		return
	}

	switch c.Args[1] {
	case "list", "ls":
		c.RunList(c.Args[2:])
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "jarls v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		// A bare path or list flags imply the list command
		c.RunList(c.Args[1:])
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `jarls - Zip Archive Entry Lister

Usage:
  jarls                                    List the configured archive
  jarls <archive>                          List entries of <archive>
  jarls list [archive] [--limit=N|--all]   List the first N entries (default 50)
  jarls init                               Create default config file
  jarls version, -v                        Show version
  jarls help, -h                           Show this help

Default archive: `+config.DefaultArchive+`
Config: ~/.jarls/config.yaml`)
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	if err := svc.Save(svc.DefaultConfig()); err != nil {
		c.fail("saving config: %v", err)
		return
	}
	fmt.Fprintf(c.Out, "%s Created config at %s\n", c.green("*"), svc.ConfigPath())
}

// listOptions holds the parsed arguments of the list command.
type listOptions struct {
	path     string
	limit    int
	limitSet bool
}

func parseListArgs(args []string) (listOptions, error) {
	var opts listOptions
	for _, arg := range args {
		switch {
		case arg == "--all":
			opts.limit = lister.NoLimit
			opts.limitSet = true
		case strings.HasPrefix(arg, "--limit="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--limit="))
			if err != nil || n < 0 {
				return opts, fmt.Errorf("invalid limit: %s", arg)
			}
			opts.limit = n
			opts.limitSet = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option: %s", arg)
		case opts.path != "":
			return opts, fmt.Errorf("unexpected argument: %s", arg)
		default:
			opts.path = arg
		}
	}
	return opts, nil
}

// RunList lists the entries of an archive.
func (c *CLI) RunList(args []string) {
	opts, err := parseListArgs(args)
	if err != nil {
		fmt.Fprintf(c.Err, "%s %v\n", c.red("Error:"), err)
		fmt.Fprintln(c.Err, "Usage: jarls list [archive] [--limit=N|--all]")
		c.Exit(1)
		return
	}

	cfg, err := c.configSvc().Load()
	if err != nil {
		c.fail("loading config: %v", err)
		return
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger, err := logging.New(cfg, c.Err)
	if err != nil {
		c.fail("%v", err)
		return
	}

	path := opts.path
	if path == "" {
		path = config.ExpandPath(cfg.Archive)
	}
	limit := cfg.Limit
	if opts.limitSet {
		limit = opts.limit
	}

	archiver := c.Archiver
	if archiver == nil {
		archiver = ziparchiver.New(logger)
	}

	listing, err := lister.New(archiver, logger).ListEntries(path, limit)
	if err != nil {
		logger.Debug().Err(err).Msg("List failed")
		c.fail("%v", err)
		return
	}

	if err := lister.Print(c.Out, listing); err != nil {
		c.fail("writing output: %v", err)
	}
}

// fail reports an error on stderr and exits with status 1.
func (c *CLI) fail(format string, a ...interface{}) {
	fmt.Fprintf(c.Err, "%s %s\n", c.red("Error:"), fmt.Sprintf(format, a...))
	c.Exit(1)
}
