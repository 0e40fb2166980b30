package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomless",
	Short: "Tomless is a tool for parsing toml-like configuration files.",
	Long:  "Tomless is a tool for parsing toml-like configuration files. It turns a document into a nested result tree and renders it as json, xml, yaml, or a structure dump.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Tomless",
	Long:  `All software has versions. This is Tomless's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tomless v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(getCmd)
}
