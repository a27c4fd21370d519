package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"pkt.systems/mdp"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdp")
}

// fileConfig mirrors the parser options in a YAML config file. Pointer
// fields distinguish "unset" from an explicit false.
type fileConfig struct {
	Width          int   `yaml:"width"`
	FencedCode     *bool `yaml:"fencedCode"`
	SetextHeadings *bool `yaml:"setextHeadings"`
	Frontmatter    *bool `yaml:"frontmatter"`
	NestLimit      int   `yaml:"nestLimit"`
}

func main() {
	var (
		widthFlag     int
		outline       bool
		outPath       string
		configPath    string
		noFrontmatter bool
		showVersion   bool
	)

	flags := pflag.NewFlagSet("mdp", pflag.ExitOnError)
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVar(&outline, "outline", false, "Print one line per block instead of rendered text")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file with parser options")
	flags.BoolVar(&noFrontmatter, "no-frontmatter", false, "Do not skip a leading frontmatter fence")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdp [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}

	cfg := fileConfig{}
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	buf, err := readInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if err := mdp.ValidateInput(buf); err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	parser := mdp.New(buf, parserOptions(cfg, noFrontmatter)...)

	if outline {
		if err := writeOutline(writer, parser); err != nil {
			fmt.Fprintf(os.Stderr, "outline: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width := resolveWidth(widthFlag, cfg.Width)
	if err := mdp.WriteText(writer, parser.ReadAll(), width); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func parserOptions(cfg fileConfig, noFrontmatter bool) []mdp.Option {
	var opts []mdp.Option
	if cfg.FencedCode != nil {
		opts = append(opts, mdp.WithFencedCode(*cfg.FencedCode))
	}
	if cfg.SetextHeadings != nil {
		opts = append(opts, mdp.WithSetextHeadings(*cfg.SetextHeadings))
	}
	if cfg.Frontmatter != nil {
		opts = append(opts, mdp.WithFrontmatter(*cfg.Frontmatter))
	}
	if cfg.NestLimit > 0 {
		opts = append(opts, mdp.WithNestLimit(cfg.NestLimit))
	}
	if noFrontmatter {
		opts = append(opts, mdp.WithFrontmatter(false))
	}
	return opts
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func readInputs(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, arg := range args {
		data, err := os.ReadFile(normalizePath(arg))
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
		if len(buf) > 0 && buf[len(buf)-1] != '\n' {
			buf = append(buf, '\n')
		}
	}
	return buf, nil
}

func writeOutline(w io.Writer, parser *mdp.Parser) error {
	for b := range parser.Blocks() {
		if _, err := fmt.Fprintln(w, outlineLine(b)); err != nil {
			return err
		}
	}
	return nil
}

func outlineLine(b mdp.Block) string {
	switch b.Kind {
	case mdp.BlockHeading:
		return fmt.Sprintf("heading level=%d", b.Level)
	case mdp.BlockParagraph:
		return "paragraph"
	case mdp.BlockQuote:
		return fmt.Sprintf("quote blocks=%d", len(b.Children))
	case mdp.BlockCode:
		if b.Info != "" {
			return fmt.Sprintf("code info=%q", b.Info)
		}
		return "code"
	case mdp.BlockRule:
		return "rule"
	case mdp.BlockListItem:
		if b.Ordered {
			return fmt.Sprintf("list-item ordered index=%d", b.Index)
		}
		return "list-item"
	}
	return "unknown"
}

func resolveWidth(flagWidth, cfgWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if cfgWidth > 0 {
		return cfgWidth
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
