// Package main is the entry point for the quill demo REPL.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quillshell/quill/internal/complete"
	"github.com/quillshell/quill/internal/config"
	"github.com/quillshell/quill/internal/editor"
	"github.com/quillshell/quill/internal/tui"
)

const version = "0.1.0"

const helpText = `quill - interactive line-editing engine demo

USAGE:
    quill [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --history FILE    Use FILE for history persistence
    --password        Mask typed characters

CONFIGURATION:
    Config file: ~/.config/quill/config.yaml

KEYBINDINGS (defaults):
    Editing:
        Left/Right, Ctrl+B/F    Move by character
        Alt+B/F                 Move by word
        Home/End, Ctrl+A/E      Line start/end
        Backspace, Ctrl+W       Delete char / word backward
        Ctrl+K / Ctrl+U         Kill to end / start
        Ctrl+V                  Paste from clipboard

    Completion:
        Tab                     Complete word at cursor
        Ctrl+N/Ctrl+P           Next/previous candidate
        Ctrl+O                  Commit selected candidate

    History & search:
        Up/Down                 Previous/next history entry
        Ctrl+R                  Incremental backward search
        Esc                     Cancel search

    Control:
        Enter                   Accept line
        Ctrl+C, Ctrl+D          Interrupt (empty line) / delete forward
        Ctrl+L                  Clear screen

Accepted lines are echoed back and recorded in history; interrupt on an
empty line exits.
`

const configTemplate = `# quill configuration
# Location: ~/.config/quill/config.yaml

history:
  # File used for history persistence. Defaults to
  # ~/.config/quill/history when empty.
  # file: ""

ui:
  prompt: "> "
  # echo: one of "normal", "password", "none"
  echo: normal
  # Ring the terminal bell when completion or search finds nothing.
  bell: false

# Bindings are applied in order over the defaults; a later entry for
# the same key overrides an earlier one.
# bindings:
#   - key: ctrl+t
#     action: clear-screen
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		historyFile string
		password    bool
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&historyFile, "history", "", "History file override")
	flag.BoolVar(&password, "password", false, "Mask typed characters")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("quill version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runREPL(historyFile, password)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runREPL reads lines until the user interrupts on an empty line.
func runREPL(historyFile string, password bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if historyFile != "" {
		cfg.History.File = historyFile
	}
	if password {
		cfg.UI.Echo = "password"
	}

	keymap, err := buildKeymap(cfg)
	if err != nil {
		return err
	}

	histPath, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	hist, err := editor.LoadHistory(histPath)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	provider := complete.NewMulti(
		complete.NewStatic([]string{"help", "history", "exit"}),
		complete.NewFilesystem(wd),
	)

	for {
		engine := editor.NewEngine(hist, provider)
		session := tui.NewSession(engine, keymap, cfg)

		outcome, err := session.Run()
		if err != nil {
			return err
		}
		if outcome.Interrupted {
			break
		}

		fmt.Println(outcome.Text)
		hist.Add(outcome.Text)
		if err := hist.Save(histPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		}
	}

	return nil
}

// buildKeymap layers config bindings over the defaults; later entries
// win.
func buildKeymap(cfg *config.Config) (editor.Keymap, error) {
	bindings := editor.DefaultBindings()
	for _, b := range cfg.Bindings {
		action, err := editor.ParseAction(b.Action)
		if err != nil {
			return editor.Keymap{}, fmt.Errorf("invalid binding for %q: %w", b.Key, err)
		}
		bindings = append(bindings, editor.Binding{Key: b.Key, Action: action})
	}
	return editor.NewKeymap(bindings), nil
}
