package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Roughsketch/iso"
	"github.com/Roughsketch/iso/pkg/logging"
	"github.com/Roughsketch/iso/pkg/option"
	"github.com/bgrewell/usage"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func render(w io.Writer, img *iso.Image, asJSON, asYAML bool) error {
	switch {
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(img)
	case asYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(img); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, img.String())
		return err
	}
}

func main() {

	u := usage.NewUsage(
		usage.WithApplicationName("isoview"),
		usage.WithApplicationDescription("isoview decodes the volume descriptor set of an ISO 9660 image and prints it."),
	)
	help := u.AddBooleanOption("h", "help", false, "Show this help message", "optional", nil)
	verbose := u.AddBooleanOption("v", "verbose", false, "Print debug output", "", nil)
	trace := u.AddBooleanOption("vv", "trace", false, "Print trace output for every decoded field group", "", nil)
	asJSON := u.AddBooleanOption("j", "json", false, "Print the decoded image as JSON", "", nil)
	asYAML := u.AddBooleanOption("y", "yaml", false, "Print the decoded image as YAML", "", nil)
	path := u.AddArgument(1, "iso-path", "Path to the ISO image to decode", "")
	parsed := u.Parse()

	if !parsed {
		u.PrintError(fmt.Errorf("failed to parse arguments"))
		os.Exit(1)
	}

	if *help {
		u.PrintUsage()
		os.Exit(0)
	}

	if path == nil || *path == "" {
		u.PrintError(fmt.Errorf("location of the iso file <iso-path> must be provided"))
		os.Exit(1)
	}

	if *asJSON && *asYAML {
		u.PrintError(fmt.Errorf("--json and --yaml are mutually exclusive"))
		os.Exit(1)
	}

	useColor := term.IsTerminal(int(os.Stderr.Fd()))
	color.NoColor = !useColor

	opts := []option.OpenOption{}
	switch {
	case *trace:
		opts = append(opts, option.WithLogger(logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_TRACE, useColor))))
	case *verbose:
		opts = append(opts, option.WithLogger(logging.NewLogger(logging.NewSimpleLogger(os.Stderr, logging.LEVEL_DEBUG, useColor))))
	}

	img, err := iso.Open(*path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), err)
		os.Exit(1)
	}

	if err := render(os.Stdout, img, *asJSON, *asYAML); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}
