package cmd

import (
	"fmt"

	"os"

	tt "github.com/phpmod-labs/phpmod/internal/types"
	"github.com/phpmod-labs/phpmod/internal/version"
	"github.com/phpmod-labs/phpmod/refactor"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// initCmd: phpmod init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".phpmod.yaml"
	}

	// Create a yaml file with the default target version and rules
	config := refactor.Config{
		Name:          "phpmod",
		TargetVersion: version.DefaultTarget,
		Rules: map[string]tt.ConfigRule{
			"version-id-check": {Severity: tt.SeverityError},
			"extra-arguments":  {Severity: tt.SeverityError},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
