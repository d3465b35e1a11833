package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/flowtool/flow/internal/config"
	"github.com/flowtool/flow/internal/shellquote"
	"github.com/flowtool/flow/internal/ui"
)

// openInEditor opens a file in the user's configured editor and
// reports whether an editor was launched. The process is started in
// the background (non-blocking).
func openInEditor(cfg *config.Config, filePath string) bool {
	if cfg == nil {
		return false
	}

	editor := cfg.GetEditor()
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	// A compound command like "open -a Cursor" needs a shell.
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellquote.Quote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Println(ui.Warningf("failed to open editor '%s': %v", editor, err))
		return false
	}
	return true
}

// openInEditorOrPrintPath opens a file in the editor, or prints the
// path if no editor is configured.
func openInEditorOrPrintPath(cfg *config.Config, filePath string) {
	if !openInEditor(cfg, filePath) {
		fmt.Printf("Open: %s\n", filePath)
		fmt.Println("(Set 'editor' in ~/.config/flow/config.toml or $EDITOR to open automatically)")
	}
}
