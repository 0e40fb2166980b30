package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dzjyyds666/tomless/encode"
	"github.com/dzjyyds666/tomless/internal/logger"
	"github.com/dzjyyds666/tomless/parse/toml"
	"github.com/dzjyyds666/tomless/pkg"
	"github.com/spf13/cobra"
)

type ParseParams struct {
	Format  string `json:"format"`  // 导出的数据格式，可选 json/xml/yaml/dict/ppdict
	Output  string `json:"output"`  // 输出结果文件位置，不提供则直接显示
	Log     string `json:"log"`     // 日志文件保存位置，不提供则直接显示
	Verbose string `json:"verbose"` // 日志详细级别，可选 info/debug/error
	Strict  bool   `json:"strict"`  // 严格模式，异常输入直接报错
}

var params *ParseParams

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "parse a toml file and render the result",
	Args:  cobra.ExactArgs(1),
	Run:   parseRun,
}

func init() {
	params = &ParseParams{}
	parseCmd.Flags().StringVarP(&params.Format, "format", "f", "json", "output format, one of json/xml/yaml/dict/ppdict")
	parseCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	parseCmd.Flags().StringVarP(&params.Log, "log", "l", "", "log file path")
	parseCmd.Flags().StringVarP(&params.Verbose, "verbose", "v", "info", "log level, one of info/debug/error")
	parseCmd.Flags().BoolVarP(&params.Strict, "strict", "s", false, "fail on input the parser would otherwise drop")
}

func parseRun(cmd *cobra.Command, args []string) {
	filename := args[0]
	exist, err := pkg.CheckFileExist(filename)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	level := logger.Level(params.Verbose)
	var lg *logger.Logger
	if len(params.Log) > 0 {
		fileLg, cleanup, err := logger.NewFileLogger(params.Log, level)
		if err != nil {
			fmt.Println("open log file error:", err)
			return
		}
		defer cleanup()
		lg = fileLg
	} else {
		lg = logger.NewWithLevel(os.Stdout, level)
	}

	start := time.Now()
	lg.ParseStarted(filename)
	parser := toml.NewParser(toml.Options{Logger: lg.Logger, Strict: params.Strict})
	result, err := parser.ParseFile(filename)
	if err != nil {
		lg.ParseFailed(filename, err)
		return
	}
	lg.ParseCompleted(filename, len(result), time.Since(start))

	content, err := render(params.Format, result)
	if err != nil {
		fmt.Println("render error:", err)
		return
	}
	if err := pkg.PrintOrSave(params.Output, content); err != nil {
		fmt.Println("save output error:", err)
		return
	}
	lg.OutputWritten(params.Output, params.Format, len(content))
}

func render(format string, result map[string]any) ([]byte, error) {
	switch format {
	case "json":
		return encode.JSON(result)
	case "xml":
		return encode.NewXmlEncoder("toml", "item").Encode(result)
	case "yaml":
		return encode.YAML(result)
	case "dict":
		return []byte(encode.Dump(result)), nil
	case "ppdict":
		return []byte(encode.PrettyDump(result)), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
