package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/config"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:           RootCmdName,
	Short:         RootCmdShort,
	Long:          RootCmdLong,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file (yaml, json or toml)")
	RootCmd.AddCommand(ServeCmd)
	RootCmd.AddCommand(QuizCmd)
}

func loadConfig() (config.Config, error) {
	v := viper.GetViper()
	config.SetDefaults(v)
	if err := config.ReadFile(v, cfgFile); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}
