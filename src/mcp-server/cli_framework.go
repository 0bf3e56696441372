// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/template"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sailflow/planks-mcp/src/cli"
	"github.com/sailflow/planks-mcp/src/internal/catalog"
	"github.com/sailflow/planks-mcp/src/internal/helper/posix"
	"github.com/sailflow/planks-mcp/src/logger"
	"github.com/sailflow/planks-mcp/src/mcp-server/templates"
	"github.com/spf13/cobra"
)

// Root command flag names.
const (
	flagInstructions = "instructions"
	flagConfig       = "config"
	flagHTTP         = "http"
	flagHelp         = "help"
)

// cliHelpData holds the data used to populate the CLI help template.
//
// Fields:
//   - ExeName: The name of the executable binary for command examples
//   - InstructionsFlagName: The formatted instructions flag name (e.g., "--instructions")
//   - ConfigFlagName: The formatted config flag name (e.g., "--config")
//   - HTTPFlagName: The formatted HTTP flag name (e.g., "--http")
//   - HelpFlagName: The formatted help flag name (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HTTPFlagName         string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Running the root command without arguments starts the MCP server on stdio,
// or on streamable HTTP with --http. The catalog subcommands (list, show,
// example, search) read the same configuration as the server. Similar to
// [Gopls-style] MCP servers, --instructions prints the text the server sends
// to clients during initialization.
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile       string
	httpMode         bool
	showInstructions bool
	embed            templates.EmbedFS
	version          string
	catalog          *catalog.Catalog
	resources        *catalog.Resources
	tools            []ToolDefinition
	fixedResources   []ResourceDefinition
	resourceTmpls    []ResourceTemplateDefinition
	instructions     string

	// stdio endpoints, replaced in tests
	stdin  io.Reader
	stdout io.Writer
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Configuration loading is deferred until a command runs so the --config flag
// and the PLANKS_MCP_CONFIG_FILE environment variable can take effect.
//
// Parameters:
//   - configFile: Default configuration file path; empty uses the environment or defaults
//   - deps: Server dependencies (embed, version, tools, resources, optional catalogs
//     and pre-rendered instructions)
//
// Returns:
//   - *CLIFramework: Initialized CLI framework ready for building commands.
//
// Example usage:
//
//	deps := ServerDependencies{
//	    Embed:   templates.MagicEmbed,
//	    Version: version.Version,
//	    Tools:   createTools(),
//	}
//	cmd := NewCLIFramework("", deps).BuildRootCommand()
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	return &CLIFramework{
		configFile:     configFile,
		embed:          deps.Embed,
		version:        deps.Version,
		catalog:        deps.Catalog,
		resources:      deps.Resources,
		tools:          deps.Tools,
		fixedResources: deps.FixedResources,
		resourceTmpls:  deps.ResourceTemplates,
		instructions:   deps.Instructions,
		stdin:          os.Stdin,
		stdout:         os.Stdout,
	}
}

// BuildRootCommand creates the root Cobra command with the catalog subcommands attached.
//
// Command behavior:
//   - With --instructions: Prints the server instructions and exits
//   - With a subcommand: Runs it (list, show, example, search)
//   - Without arguments: Starts the MCP server on stdio, or on HTTP with --http
//
// Returns:
//   - *cobra.Command: Root command with MCP server integration.
//
// BuildRootCommand panics when the embedded help template is missing or malformed,
// since the binary cannot describe itself without it.
func (cf *CLIFramework) BuildRootCommand() *cobra.Command {
	exeName := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:          exeName,
		Short:        "planks UI component catalog with MCP server integration",
		Version:      cf.version,
		SilenceUsage: true,
	}

	// Registered early so extractFlagNames sees it; cobra would add it during Execute.
	rootCmd.Flags().BoolP(flagHelp, "h", false, "help for "+exeName)

	rootCmd.PersistentFlags().BoolVar(&cf.showInstructions, flagInstructions, false, "print the instructions sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, flagConfig, cf.configFile, "path to configuration file (JSON, JSONC or YAML)")
	rootCmd.Flags().BoolVar(&cf.httpMode, flagHTTP, false, "serve streamable HTTP on http.addr instead of stdio")

	if cf.embed == nil {
		panic("CLIFramework embed filesystem not initialized")
	}

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, extractFlagNames(rootCmd))
	if err != nil {
		panic(fmt.Sprintf("failed to process CLI help template: %v", err))
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.AddCommand(cli.Commands(cf.openCatalog)...)
	rootCmd.RunE = cf.runRoot

	return rootCmd
}

// runRoot is the RunE of the root command. Flags are read here, after parsing.
func (cf *CLIFramework) runRoot(cmd *cobra.Command, args []string) error {
	if cf.showInstructions {
		return cf.printInstructions(cmd.OutOrStdout())
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), cmd.Name())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return cf.startMCPServer(ctx)
}

// loadAndExecuteCLIHelpTemplate renders the embedded CLI help template and splits it
// into the Long description and the Examples section.
//
// Parameters:
//   - exeName: The name of the executable binary for command examples
//   - data: Formatted flag names; ExeName is filled in here
//
// Returns:
//   - longDesc: The processed Long description text for the CLI command
//   - examples: The processed Examples section text for the CLI command
//   - err: Template loading, parsing, execution, or result parsing errors
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName string, data cliHelpData) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelpFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to load CLI help template: %w", err)
	}

	data.ExeName = exeName

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse CLI help template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute CLI help template: %w", err)
	}

	return cf.parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the "## Examples" line.
//
// Parameters:
//   - templateResult: The rendered template output as a string
//
// Returns:
//   - longDesc: Everything before the "## Examples" line, trimmed
//   - examples: Everything after it, trimmed
//   - err: If the marker is missing
//
// Both \n and \r\n line endings are accepted.
func (cf *CLIFramework) parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", fmt.Errorf("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	return strings.TrimSpace(templateResult[:lineStart]), strings.TrimSpace(templateResult[lineEnd:]), nil
}

// extractFlagNames looks up the root flags and formats them with the "--" prefix,
// so the help text always matches the registered flags.
//
// Parameters:
//   - rootCmd: The root Cobra command
//
// Returns:
//   - cliHelpData: Flag names; a missing flag falls back to its default name
func extractFlagNames(rootCmd *cobra.Command) cliHelpData {
	lookup := func(name string) string {
		f := rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = rootCmd.Flags().Lookup(name)
		}
		if f == nil {
			return "--" + name
		}
		return "--" + f.Name
	}

	return cliHelpData{
		InstructionsFlagName: lookup(flagInstructions),
		ConfigFlagName:       lookup(flagConfig),
		HTTPFlagName:         lookup(flagHTTP),
		HelpFlagName:         lookup(flagHelp),
	}
}

// openCatalog loads the configuration and opens the catalogs for a subcommand.
// Catalogs injected through [ServerDependencies] take precedence.
func (cf *CLIFramework) openCatalog(log logger.Logger) (*catalog.Catalog, *catalog.Resources, error) {
	if cf.catalog != nil && cf.resources != nil {
		return cf.catalog, cf.resources, nil
	}

	config, err := loadConfig(cf.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return config.OpenCatalog(log)
}

// renderInstructions returns the pre-rendered instructions, or renders them for
// the library named in config.
func (cf *CLIFramework) renderInstructions(config *Config) (string, error) {
	if cf.instructions != "" {
		return cf.instructions, nil
	}
	return loadInstructions(cf.embed, config.Library.Name, cf.tools, cf.fixedResources, cf.resourceTmpls)
}

// startMCPServer builds the server from the loaded configuration and serves it
// until ctx is cancelled or SIGINT/SIGTERM arrives.
//
// Transports:
//   - stdio (default): JSON-RPC frames on stdin/stdout; logs go to stderr or log.file
//   - --http: streamable HTTP with /metrics and /healthz on http.addr
//
// Returns:
//   - nil: When the server shuts down because of a signal or cancellation
//   - error: Configuration loading, catalog, server building or transport errors
func (cf *CLIFramework) startMCPServer(ctx context.Context) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, closer, err := config.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	instructions, err := cf.renderInstructions(config)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	builder := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithLogger(log).
		WithTools(cf.tools...).
		WithResources(cf.fixedResources...).
		WithResourceTemplates(cf.resourceTmpls...).
		WithInstructions(instructions)
	if cf.catalog != nil && cf.resources != nil {
		builder = builder.WithCatalog(cf.catalog, cf.resources)
	}

	var registry *prometheus.Registry
	if cf.httpMode {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		builder = builder.WithMetrics(registry)
	}

	mcpServer, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cf.httpMode {
		return NewHTTPServer(mcpServer, config, registry, log).Serve(ctx)
	}

	log.Printf("planks MCP server %s started on stdio", cf.version)

	stdioServer := server.NewStdioServer(mcpServer)
	if err := stdioServer.Listen(ctx, cf.stdin, cf.stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Printf("planks MCP server stopped")
	return nil
}

// printInstructions writes the server instructions to w.
func (cf *CLIFramework) printInstructions(w io.Writer) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instructions, err := cf.renderInstructions(config)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	_, err = fmt.Fprint(w, instructions)
	return err
}
