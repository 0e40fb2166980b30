package pkg

import (
	"fmt"
	"os"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// PrintOrSave 将内容写入文件，未提供文件路径则输出到标准输出
func PrintOrSave(filePath string, content []byte) error {
	if len(filePath) == 0 {
		fmt.Println(string(content))
		return nil
	}
	return os.WriteFile(filePath, content, 0644)
}
