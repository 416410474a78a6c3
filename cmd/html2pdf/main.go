// html2pdf converts static HTML files or whole directories to PDF.
//
// Usage:
//
//	html2pdf --create-sample
//	html2pdf --html report.html [--output report.pdf]
//	html2pdf --batch ./pages [--output-dir ./pdf_outputs]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	htmlpdf "github.com/bytescrumDev35/fluffy-spoon-html-to-pdf"
)

var (
	htmlPath     string
	outputPath   string
	batchDir     string
	outputDir    string
	createSample bool
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	autoDownload bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "html2pdf",
	Short: "Convert HTML files to PDF",
	Long: `html2pdf converts static HTML files or HTML directories to PDF.

Rendering uses headless Chrome when a browser is available and falls
back to a degraded text-only layout otherwise.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&htmlPath, "html", "", "path to an HTML file to convert")
	f.StringVar(&outputPath, "output", "", "output PDF file path (default: derived from the input name)")
	f.StringVar(&batchDir, "batch", "", "directory containing HTML files for batch conversion")
	f.StringVar(&outputDir, "output-dir", "./pdf_outputs", "output directory for generated PDFs")
	f.BoolVar(&createSample, "create-sample", false, "create a sample HTML file and convert it")
	f.StringVar(&chromePath, "chrome", "", "path to the Chrome/Chromium executable")
	f.DurationVar(&timeout, "timeout", 30*time.Second, "maximum duration of a single conversion")
	f.BoolVar(&noSandbox, "no-sandbox", false, "disable the Chrome sandbox (needed when running as root)")
	f.BoolVar(&autoDownload, "auto-download", false, "download a Chromium build when no browser is installed")
	f.BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	opts := []htmlpdf.Option{
		htmlpdf.WithOutputDir(outputDir),
		htmlpdf.WithLogger(logger),
		htmlpdf.WithTimeout(timeout),
	}
	if chromePath != "" {
		opts = append(opts, htmlpdf.WithChromePath(chromePath))
	}
	if noSandbox {
		opts = append(opts, htmlpdf.WithNoSandbox())
	}
	if autoDownload {
		opts = append(opts, htmlpdf.WithAutoDownload())
	}

	conv, err := htmlpdf.New(opts...)
	if err != nil {
		fmt.Printf("Failed to initialize converter: %v\n", err)
		return nil
	}
	defer conv.Close()

	ctx := cmd.Context()

	// Modes are mutually exclusive, first match wins:
	// sample > single file > batch > usage hint.
	switch {
	case createSample:
		if err := htmlpdf.WriteSample(htmlpdf.SampleFileName); err != nil {
			fmt.Printf("Failed to create sample HTML file: %v\n", err)
			return nil
		}
		fmt.Printf("Sample HTML file created: %s\n", htmlpdf.SampleFileName)

		pdfPath, err := conv.ConvertFile(ctx, htmlpdf.SampleFileName, "")
		if err != nil {
			fmt.Printf("Failed to generate sample PDF: %v\n", err)
			return nil
		}
		fmt.Printf("Sample PDF generated: %s\n", pdfPath)

	case htmlPath != "":
		pdfPath, err := conv.ConvertFile(ctx, htmlPath, outputPath)
		if err != nil {
			fmt.Printf("Conversion failed: %v\n", err)
			return nil
		}
		fmt.Printf("PDF generated successfully: %s\n", pdfPath)

	case batchDir != "":
		report, err := conv.ConvertDirectory(ctx, batchDir, outputDir)
		if err != nil {
			fmt.Printf("Batch conversion failed: %v\n", err)
			return nil
		}
		fmt.Printf("Batch conversion completed: %d/%d files converted successfully\n",
			report.Succeeded(), report.Len())
		for _, e := range report.Entries {
			if e.Err != nil {
				fmt.Printf("  %s: Error: %v\n", filepath.Base(e.Input), e.Err)
			} else {
				fmt.Printf("  %s -> %s\n", filepath.Base(e.Input), filepath.Base(e.Output))
			}
		}

	default:
		fmt.Println("No action specified. Use --help for usage information.")
		fmt.Println()
		fmt.Println("Quick start:")
		fmt.Println("  1. Create a sample:      html2pdf --create-sample")
		fmt.Println("  2. Convert an HTML file: html2pdf --html sample_report.html")
		fmt.Println("  3. Batch convert:        html2pdf --batch ./html_files")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
