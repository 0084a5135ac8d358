package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// InitConfig locates and loads pf_config.yaml, falling back to writing a
// default config into the working directory on first run.
func InitConfig() {
	viper.SetConfigName("pf_config")
	viper.SetConfigType("yaml")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" && homeDir != "" {
		xdgConfigHome = filepath.Join(homeDir, ".config")
	}

	configPaths := []string{
		"/etc/pfactor",
		"/usr/local/etc/pfactor",
	}

	if xdgConfigHome != "" {
		configPaths = append(configPaths, filepath.Join(xdgConfigHome, "pfactor"))
	}

	if homeDir != "" {
		configPaths = append(configPaths, filepath.Join(homeDir, ".pfactor"), homeDir)
	}

	configPaths = append(configPaths, ".")

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("method", "pminus1")
	viper.SetDefault("bound", 100000)
	viper.SetDefault("attempts", 3)
	viper.SetDefault("parallel", 1)
	viper.SetDefault("tablePrintDefault", false)
	viper.SetDefault("noColor", false)
	viper.SetDefault("listenAddr", ":1080")

	err = viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file found, writing default pf_config.yaml to the working directory")
		err := viper.SafeWriteConfigAs("./pf_config.yaml")
		if err != nil {
			return
		}
	}

	err = viper.ReadInConfig()
	if err != nil {
		return
	}
}
