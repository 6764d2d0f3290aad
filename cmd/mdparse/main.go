package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/mdparse/internal/ast"
	"github.com/gubarz/mdparse/internal/config"
	"github.com/gubarz/mdparse/internal/logger"
	"github.com/gubarz/mdparse/internal/output"
	"github.com/gubarz/mdparse/internal/parser"
	"github.com/gubarz/mdparse/internal/render"
	"github.com/gubarz/mdparse/internal/ui"
)

var version = "0.1.0"

// log is replaced in initConfig once the level is known
var log = logger.Discard()

var rootCmd = &cobra.Command{
	Use:   "mdparse [file]",
	Short: "Markdown to HTML with parser combinators",
	Long: `Parses a small markdown dialect into a document tree and renders it as HTML.

Reads the file given as argument, or stdin when the argument is absent or "-".
The result is printed, copied to the clipboard or written to a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHTML,
}

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Pretty-print the parsed document tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Browse the parsed document in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mdparse %s (%s)\n", version, runtime.Version())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(treeCmd, previewCmd, versionCmd)

	rootCmd.Flags().StringP("output", "o", "", "Output mode: print, copy, file")
	rootCmd.Flags().StringP("file", "f", "", "Destination for file output (implies -o file)")
	rootCmd.Flags().Bool("print", false, "Print HTML (shorthand for -o print)")
	rootCmd.Flags().Bool("copy", false, "Copy HTML (shorthand for -o copy)")
	rootCmd.Flags().Bool("no-wrap", false, "Omit the <!DOCTYPE html><html> wrapper")
	rootCmd.Flags().BoolP("benchmark", "b", false, "Benchmark parse time and exit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log parse and output details")

	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		config.SetLogLevel("debug")
	}
	log = logger.NewWithLevel(os.Stderr, logger.ParseLevel(config.GetLogLevel()))
	log.ConfigLoaded(config.UsedFile())
}

// readSource returns the document text and a name for logs
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read error: %w", err)
	}
	return string(data), args[0], nil
}

// load reads and parses the document named by args
func load(cmd *cobra.Command, args []string) (ast.Document, string, error) {
	input, source, err := readSource(cmd, args)
	if err != nil {
		return ast.Document{}, "", err
	}

	log.ParseStarted(source, len(input))
	start := time.Now()
	doc, err := parser.Parse(input)
	if err != nil {
		log.ParseFailed(source, err)
		return ast.Document{}, "", fmt.Errorf("parse error: %w", err)
	}
	log.ParseCompleted(source, len(doc.Blocks), time.Since(start))
	return doc, source, nil
}

func runHTML(cmd *cobra.Command, args []string) error {
	// Handle output mode flags
	if p, _ := cmd.Flags().GetBool("print"); p {
		config.SetOutput("print")
	} else if c, _ := cmd.Flags().GetBool("copy"); c {
		config.SetOutput("copy")
	} else if f, _ := cmd.Flags().GetString("file"); f != "" {
		config.SetOutput("file")
		config.SetOutputFile(f)
	} else if o, _ := cmd.Flags().GetString("output"); o != "" {
		config.SetOutput(o)
	}

	if noWrap, _ := cmd.Flags().GetBool("no-wrap"); noWrap {
		config.SetDocumentWrapper(false)
	}

	benchmark, _ := cmd.Flags().GetBool("benchmark")
	start := time.Now()

	doc, _, err := load(cmd, args)
	if err != nil {
		return err
	}

	html, err := render.HTML(doc, config.RenderOptions())
	if err != nil {
		return fmt.Errorf("render error: %w", err)
	}

	if benchmark {
		elapsed := time.Since(start)
		// Force GC and get memory stats
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Parsed %d blocks into %s of HTML in %v\n", len(doc.Blocks), humanize.Bytes(uint64(len(html))), elapsed)
		fmt.Fprintf(out, "Memory: Alloc=%s, TotalAlloc=%s, Sys=%s, HeapObjects=%s\n",
			humanize.Bytes(m.Alloc), humanize.Bytes(m.TotalAlloc), humanize.Bytes(m.Sys), humanize.Comma(int64(m.HeapObjects)))
		return nil
	}

	sink := output.NewSink().WithStdout(cmd.OutOrStdout()).WithLogger(log)
	return sink.Write(html)
}

func runTree(cmd *cobra.Command, args []string) error {
	doc, _, err := load(cmd, args)
	if err != nil {
		return err
	}
	_, err = pp.Fprintln(cmd.OutOrStdout(), doc)
	return err
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, source, err := load(cmd, args)
	if err != nil {
		return err
	}
	return ui.Run(source, doc)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
