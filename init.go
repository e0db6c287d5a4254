package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const defaultFuncName = "dj"

func newInitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:       "init [bash|zsh|fish]",
		Short:     "Print a shell function that cds into the picked directory",
		Long:      "Print a shell function for your rc file, e.g. eval \"$(dirjump init bash)\". The shell is taken from $SHELL when omitted.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			} else {
				shell = filepath.Base(os.Getenv("SHELL"))
			}

			bin, err := os.Executable()
			if err != nil {
				bin = os.Args[0]
			}

			fmt.Fprint(cmd.OutOrStdout(), shellInit(shell, name, bin))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", defaultFuncName, "name of the shell function")
	return cmd
}

// shellInit returns the wrapper for shell. The picker draws on the tty and
// reports the path on stderr, so the wrapper swaps the two streams.
func shellInit(shell, name, bin string) string {
	if shell == "fish" {
		return fmt.Sprintf(`function %s
  set -l dir (%s $argv 2>&1 >/dev/tty)
  if test $status -eq 0 -a -d "$dir"
    cd -- "$dir"
  else if test -n "$dir"
    printf '%%s\n' "$dir" >&2
  end
end
`, name, fishQuote(bin))
	}

	return fmt.Sprintf(`%s() {
  local dir
  dir=$(%s "$@" 2>&1 >/dev/tty)
  if [ $? -eq 0 ] && [ -d "$dir" ]; then
    cd -- "$dir"
  elif [ -n "$dir" ]; then
    printf '%%s\n' "$dir" >&2
  fi
}
`, name, q(bin))
}

func q(str string) string {
	return "'" + strings.ReplaceAll(str, "'", "'\"'\"'") + "'"
}

func fishQuote(str string) string {
	str = strings.ReplaceAll(str, `\`, `\\`)
	return "'" + strings.ReplaceAll(str, "'", `\'`) + "'"
}
