// Package output formats command results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"
)

// Format 输出格式
type Format string

const (
	// FormatText 纯文本格式（默认），每行 key: value
	FormatText Format = "text"
	// FormatJSON 单行JSON
	FormatJSON Format = "json"
	// FormatPretty 美化JSON格式
	FormatPretty Format = "pretty"
	// FormatTable 表格格式
	FormatTable Format = "table"
)

// ParseFormat 解析输出格式
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatPretty, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text|json|pretty|table)", s)
	}
}

// Formatter 输出格式化器
type Formatter struct {
	format    Format
	writer    io.Writer // 数据输出
	logWriter io.Writer // 提示消息输出
	silent    bool
}

// NewFormatter 创建格式化器，数据写入 writer（默认 stdout），提示消息写入 stderr
func NewFormatter(format Format, writer io.Writer) *Formatter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Formatter{
		format:    format,
		writer:    writer,
		logWriter: os.Stderr,
	}
}

// SetLogWriter 设置提示消息输出目标（默认 stderr）
func (f *Formatter) SetLogWriter(writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	f.logWriter = writer
}

// SetSilent 静默模式只抑制提示消息，结果照常输出
func (f *Formatter) SetSilent(silent bool) {
	f.silent = silent
}

// Format 返回当前输出格式
func (f *Formatter) Format() Format {
	return f.format
}

// Print 按格式输出结果
func (f *Formatter) Print(data interface{}) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(data, false)
	case FormatPretty:
		return f.printJSON(data, true)
	case FormatTable:
		return f.printTable(data)
	default:
		return f.printText(data)
	}
}

func (f *Formatter) printJSON(data interface{}, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := fmt.Fprintln(f.writer, string(out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (f *Formatter) printTable(data interface{}) error {
	var rows pterm.TableData
	switch v := data.(type) {
	case map[string]interface{}:
		rows = pterm.TableData{{"Key", "Value"}}
		for _, key := range sortedKeys(v) {
			rows = append(rows, []string{key, formatValue(v[key])})
		}
	case []map[string]interface{}:
		if len(v) == 0 {
			return nil
		}
		columns := extractColumns(v)
		rows = pterm.TableData{columns}
		for _, row := range v {
			values := make([]string, len(columns))
			for i, col := range columns {
				values[i] = formatValue(row[col])
			}
			rows = append(rows, values)
		}
	default:
		return f.printJSON(data, true)
	}

	err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithWriter(f.writer).
		WithData(rows).
		Render()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func (f *Formatter) printText(data interface{}) error {
	var b strings.Builder
	switch v := data.(type) {
	case map[string]interface{}:
		for _, key := range sortedKeys(v) {
			fmt.Fprintf(&b, "%s: %s\n", key, formatValue(v[key]))
		}
	case []map[string]interface{}:
		for i, row := range v {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, key := range sortedKeys(row) {
				fmt.Fprintf(&b, "%s: %s\n", key, formatValue(row[key]))
			}
		}
	default:
		fmt.Fprintf(&b, "%s\n", formatValue(v))
	}
	if _, err := io.WriteString(f.writer, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// PrintSuccess 打印成功消息
func (f *Formatter) PrintSuccess(message string) {
	if f.silent {
		return
	}
	pterm.Success.WithWriter(f.logWriter).Println(message)
}

// PrintInfo 打印信息消息
func (f *Formatter) PrintInfo(message string) {
	if f.silent {
		return
	}
	pterm.Info.WithWriter(f.logWriter).Println(message)
}

// PrintWarning 打印警告消息
func (f *Formatter) PrintWarning(message string) {
	if f.silent {
		return
	}
	pterm.Warning.WithWriter(f.logWriter).Println(message)
}

// PrintError 打印错误消息（静默模式下仍输出）
func (f *Formatter) PrintError(err error) {
	pterm.Error.WithWriter(f.logWriter).Println(err.Error())
}

// ===== 辅助函数 =====

// formatValue 格式化值
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int, int64, uint, uint8, uint64:
		return fmt.Sprintf("%d", v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// extractColumns 按首次出现顺序收集列名
func extractColumns(data []map[string]interface{}) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range data {
		for _, key := range sortedKeys(row) {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	return columns
}
