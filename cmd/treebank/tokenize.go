package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	treebank "github.com/jamesainslie/go-treebank"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [text...]",
	Short: "Tokenize text from arguments, a file, or stdin",
	Long: `Tokenize splits text into Penn-Treebank style tokens, one per line.
With no arguments and no -file flag, text is read from stdin.`,
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("file", "", "read text from file instead of arguments")
	tokenizeCmd.Flags().String("preset", "default", "base configuration (default|plain)")
	tokenizeCmd.Flags().String("config", "", "TOML file overriding configuration options")
	tokenizeCmd.Flags().Bool("offsets", false, "print start/end byte offsets per token")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sec := treebank.NewSection(text)
	if err := treebank.New(cfg).TokenizeSection(sec); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	offsets, _ := cmd.Flags().GetBool("offsets")
	paint := tokenPainter(cmd)

	for _, tok := range sec.Tokens() {
		txt := sec.TokenText(tok)
		if offsets {
			fmt.Printf("%d\t%d\t%s\n", tok.Start, tok.End, paint(txt))
		} else {
			fmt.Println(paint(txt))
		}
	}
	return nil
}

// inputText resolves the tokenization input: arguments, -file, or stdin.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
}

// loadConfig builds the tokenizer configuration from the preset flag with
// optional TOML overrides.
func loadConfig(cmd *cobra.Command) (treebank.Config, error) {
	preset, _ := cmd.Flags().GetString("preset")

	var cfg treebank.Config
	switch preset {
	case "default":
		cfg = treebank.DefaultConfig()
	case "plain":
		cfg = treebank.PlainConfig()
	default:
		return treebank.Config{}, fmt.Errorf("unknown preset: %s", preset)
	}

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return treebank.Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// tokenPainter returns a per-token colorizer keyed on the token's leading
// character class, or the identity function when color is off.
func tokenPainter(cmd *cobra.Command) func(string) string {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := mode == "on" || (mode == "auto" && isatty.IsTerminal(os.Stdout.Fd()))
	if !useColor {
		return func(s string) string { return s }
	}

	word := color.New(color.FgCyan)
	num := color.New(color.FgYellow)
	punct := color.New(color.FgMagenta)

	return func(s string) string {
		r, _ := utf8.DecodeRuneInString(s)
		switch {
		case unicode.IsLetter(r):
			return word.Sprint(s)
		case unicode.IsDigit(r):
			return num.Sprint(s)
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			return punct.Sprint(s)
		default:
			return s
		}
	}
}
