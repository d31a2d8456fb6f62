package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tuannvm/ultratech/internal/config"
)

const configHeader = `# ULTRA-Tech configuration
# locale: message catalog (en, fr, or any <locale>.yaml under messages_dir)
# simulation_delay_ms: delay before a simulation result is revealed
# Environment overrides: ULTRATECH_LOCALE, ULTRATECH_SIMULATION_DELAY_MS,
# ULTRATECH_LOG_LEVEL, ULTRATECH_LOG_FILE

`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ultratech configuration",
	Long: `Create a .ultratech/config.yaml file in the current directory with the
default settings.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := filepath.Join(config.Dir, "config.yaml")

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := config.Default().Save(configFile); err != nil {
		return err
	}

	// Prepend the header comment
	data, err := os.ReadFile(configFile)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(configHeader+string(data)), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logInfo("Created %s", configFile)
	logInfo("")
	logInfo("You can now customize the settings and run:")
	logInfo("  ultratech")
	logInfo("  ultratech run Alpha:7 Beta:11 --simulate")
	return nil
}
