package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	dof "github.com/reoring/godof"
	"github.com/reoring/godof/i18n"
)

var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) { version = v }

// options are the global flags, resolved against the config file.
type options struct {
	verbose      bool
	configPath   string
	lang         string
	failFast     bool
	allowUnknown bool

	cfg Config
}

// Execute runs the dof CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCommand(os.Stderr).ExecuteContext(ctx)
}

// newRootCommand builds the command tree. Logs go to logOut.
func newRootCommand(logOut io.Writer) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "dof",
		Short:         "Parse and validate .dof keyboard layouts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if o.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(logOut, level)))
			return o.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&o.configPath, "config", "", "TOML config file (default $"+configEnv+")")
	pf.StringVar(&o.lang, "lang", "", "language of issue labels (en, ja)")
	pf.BoolVar(&o.failFast, "fail-fast", false, "stop at the first issue of each file")
	pf.BoolVar(&o.allowUnknown, "allow-unknown", false, "ignore unknown top-level fields")

	root.AddCommand(newCheckCommand(o))
	root.AddCommand(newShowCommand(o))
	root.AddCommand(newSchemaCommand())
	return root
}

// resolve loads the config file and applies the flags set on the command line.
func (o *options) resolve(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = o.lang
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = o.failFast
	}
	if flags.Changed("allow-unknown") && o.allowUnknown {
		cfg.Unknown = "strip"
	}
	o.cfg = cfg
	loggerFromContext(cmd.Context()).Debug("config", "lang", cfg.Lang, "fail_fast", cfg.FailFast, "unknown", cfg.Unknown, "workers", cfg.Workers)
	return nil
}

// parseFile reads and parses one layout; .yaml and .yml files are YAML,
// everything else JSON.
func parseFile(ctx context.Context, path string, opt dof.ParseOpt) (*dof.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, dof.Issues{{Path: "/", Code: dof.CodeTruncated, Message: "max bytes exceeded"}}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return dof.Parse(ctx, dof.YAMLBytes(data), opt)
	}
	return dof.Parse(ctx, dof.JSONBytes(data), opt)
}

// formatIssue renders "path: label: message".
func formatIssue(tr i18n.Translator, it dof.Issue) string {
	data := map[string]string{}
	if l, ok := it.Params["layer"].(string); ok {
		data["layer"] = l
	}
	return fmt.Sprintf("%s: %s: %s", it.Path, tr.Message(it.Code, data), it.Message)
}
