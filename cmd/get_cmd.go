package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/tomless/encode"
	"github.com/dzjyyds666/tomless/internal/logger"
	"github.com/dzjyyds666/tomless/parse/toml"
	"github.com/dzjyyds666/tomless/pkg"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key.path> <file>",
	Short: "look up a dotted key path in a toml file",
	Args:  cobra.ExactArgs(2),
	Run:   getRun,
}

func getRun(cmd *cobra.Command, args []string) {
	keyPath, filename := args[0], args[1]
	exist, err := pkg.CheckFileExist(filename)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	lg := logger.NewWithLevel(os.Stdout, logger.Level("error"))
	result, err := toml.NewParser(toml.Options{Logger: lg.Logger}).ParseFile(filename)
	if err != nil {
		lg.ParseFailed(filename, err)
		return
	}
	val, ok := toml.GetPath(result, keyPath)
	if !ok {
		lg.LookupFailed(filename, keyPath)
		return
	}
	content, err := encode.JSON(val)
	if err != nil {
		fmt.Println("render error:", err)
		return
	}
	fmt.Println(string(content))
}
