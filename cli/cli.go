// Package cli provides the plain terminal front end: a prompt loop,
// output formatting, and slash-prefixed meta commands for saving,
// loading, and inspecting the session.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirkkok101/zorkcore/engine"
	"github.com/dirkkok101/zorkcore/engine/save"
	"github.com/dirkkok101/zorkcore/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".zorkcore", "saves"),
	}
}

// Run starts the game loop: opening text, then prompt, input,
// dispatch, output until EOF or /quit.
func (c *CLI) Run() {
	c.printLine(c.Engine.Opening())

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.printResult(c.Engine.ProcessCommand(input))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should
// exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	if name == "" {
		name = "quicksave"
	}

	c.Engine.SyncRNG()
	path := filepath.Join(c.SaveDir, name+".json")
	if err := save.WriteFile(path, c.Engine.State().State(), save.Meta{Mode: "cli"}); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", name))
}

func (c *CLI) cmdLoad(name string) {
	if name == "" {
		name = "quicksave"
	}

	path := filepath.Join(c.SaveDir, name+".json")
	gs, _, err := save.ReadFile(path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Engine.Restore(gs, c.Engine.Limits())
	c.printSystem(fmt.Sprintf("Game loaded from %s (move %d).", name, gs.Moves))
	c.printLine(c.Engine.Scenes().Describe(gs.CurrentSceneID))
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /quit         — Exit game",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"",
		"Game commands:",
		"  look (l)               — Describe the scene",
		"  examine <thing> (x)    — Look closely at something",
		"  go <dir>               — Move (or just type n/s/e/w/u/d)",
		"  take/get <item>        — Pick something up",
		"  drop <item>            — Put something down",
		"  put <item> in <thing>  — Place an item in a container",
		"  open / close           — Open or close something",
		"  lock / unlock … with <key>",
		"  light / extinguish     — Work a light source",
		"  read <thing>           — Read what's written",
		"  inventory (i)          — Check what you're carrying",
		"  score                  — Show score and moves",
		"  diagnose               — Check your health",
		"  wait (z)               — Let time pass",
		"  again (g)              — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	st := c.Engine.State()
	c.printSystem(fmt.Sprintf("Scene: %s", st.CurrentSceneID()))
	c.printSystem(fmt.Sprintf("Score: %d  Moves: %d", st.Score(), st.Moves()))
	c.printSystem(fmt.Sprintf("Inventory: %v", st.Inventory()))
	if flags := st.State().Flags; len(flags) > 0 {
		c.printSystem(fmt.Sprintf("Flags: %v", flags))
	}
}

func (c *CLI) printResult(result types.CommandResult) {
	if result.Message != "" {
		c.printLine(result.Message)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
