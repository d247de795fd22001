package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/config"
	"github.com/llehouerou/trackersearch/internal/errmsg"
)

const appDir = "trackersearch"

// installFile is one file written by the install command.
type installFile struct {
	Path    string
	Content string
}

func (a *app) installCmd() *cobra.Command {
	var (
		printOnly bool
		dataHome  string
		execPath  string
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the search provider with GNOME Shell",
		Long: `Write the shell search provider file and the D-Bus activation file:

  $XDG_DATA_HOME/gnome-shell/search-providers/trackersearch.ini
  $XDG_DATA_HOME/dbus-1/services/<bus name>.service

The shell reads them at login; log out and back in after installing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if execPath == "" {
				exe, err := os.Executable()
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpInstall, err)
				}
				execPath = exe
			}

			configFile := a.configFile
			if configFile != "" {
				abs, err := filepath.Abs(configFile)
				if err != nil {
					return fmt.Errorf("%s: %w", errmsg.OpInstall, err)
				}
				configFile = abs
			}

			files := installFiles(dataHome, a.cfg.GetDBusConfig(), serviceExec(execPath, configFile))
			if printOnly {
				return printFiles(cmd.OutOrStdout(), files)
			}
			if err := writeFiles(files); err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpInstall, err)
			}
			for _, f := range files {
				a.logger.Info("installed", "path", f.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the files instead of writing them")
	cmd.Flags().StringVar(&dataHome, "data-dir", xdg.DataHome, "base data directory")
	cmd.Flags().StringVar(&execPath, "exec", "", "trackersearch binary started by D-Bus (default: this binary)")
	return cmd
}

func installFiles(dataHome string, bus config.DBusConfig, execLine string) []installFile {
	return []installFile{
		{
			Path:    filepath.Join(dataHome, "gnome-shell", "search-providers", appDir+".ini"),
			Content: providerFile(bus),
		},
		{
			Path:    filepath.Join(dataHome, "dbus-1", "services", bus.BusName+".service"),
			Content: serviceFile(bus, execLine),
		},
	}
}

func providerFile(bus config.DBusConfig) string {
	var b strings.Builder
	b.WriteString("[Shell Search Provider]\n")
	fmt.Fprintf(&b, "DesktopId=%s\n", bus.DesktopID)
	fmt.Fprintf(&b, "BusName=%s\n", bus.BusName)
	fmt.Fprintf(&b, "ObjectPath=%s\n", bus.ObjectPath)
	b.WriteString("Version=2\n")
	return b.String()
}

func serviceFile(bus config.DBusConfig, execLine string) string {
	var b strings.Builder
	b.WriteString("[D-BUS Service]\n")
	fmt.Fprintf(&b, "Name=%s\n", bus.BusName)
	fmt.Fprintf(&b, "Exec=%s\n", execLine)
	return b.String()
}

// serviceExec builds the Exec line of the activation file.
func serviceExec(execPath, configFile string) string {
	args := []string{quoteExec(execPath)}
	if configFile != "" {
		args = append(args, "--config", quoteExec(configFile))
	}
	args = append(args, "serve")
	return strings.Join(args, " ")
}

func quoteExec(s string) string {
	if !strings.ContainsAny(s, " \t\"'\\") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func printFiles(w io.Writer, files []installFile) error {
	for i, f := range files {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "# %s\n%s", f.Path, f.Content); err != nil {
			return err
		}
	}
	return nil
}

func writeFiles(files []installFile) error {
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(f.Path, []byte(f.Content), 0o644); err != nil { //nolint:gosec // read by the shell and the bus daemon
			return err
		}
	}
	return nil
}
