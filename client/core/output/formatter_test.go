package output

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"json", FormatJSON, false},
		{" Pretty ", FormatPretty, false},
		{"TABLE", FormatTable, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrint(t *testing.T) {
	addr := common.HexToAddress("0x2c7536E3605D9C16a7a3D7b1898e529396a65c23")
	data := map[string]interface{}{
		"fee_amount":  uint64(50),
		"fee_address": addr,
		"native":      true,
		"balance":     big.NewInt(7),
	}

	tests := []struct {
		name   string
		format Format
		want   []string
	}{
		{"文本", FormatText, []string{
			"balance: 7\n",
			"fee_address: " + addr.Hex() + "\n",
			"fee_amount: 50\n",
			"native: true\n",
		}},
		{"JSON", FormatJSON, []string{`"fee_amount":50`, `"native":true`, `"balance":7`}},
		{"美化JSON", FormatPretty, []string{"{\n  \"balance\": 7,"}},
		{"表格", FormatTable, []string{"Key", "fee_amount", "50", addr.Hex()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewFormatter(tt.format, &buf).Print(data))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPrintTextOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatText, &buf).Print(map[string]interface{}{"b": 2, "a": "x"}))
	assert.Equal(t, "a: x\nb: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, NewFormatter(FormatText, &buf).Print("0xabc"))
	assert.Equal(t, "0xabc\n", buf.String())
}

func TestPrintTableRows(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]interface{}{
		{"name": "BTC", "supply": uint64(100)},
		{"name": "DOGE", "decimals": uint8(9)},
	}
	require.NoError(t, NewFormatter(FormatTable, &buf).Print(rows))

	out := buf.String()
	header := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, header, "name")
	assert.Contains(t, header, "supply")
	assert.Contains(t, header, "decimals")
	assert.Contains(t, out, "DOGE")
	assert.Contains(t, out, "-")
}

func TestMessages(t *testing.T) {
	var data, logs bytes.Buffer
	f := NewFormatter(FormatText, &data)
	f.SetLogWriter(&logs)

	f.PrintSuccess("deployed")
	f.PrintInfo("connecting")
	f.PrintWarning("careful")
	f.PrintError(errors.New("boom"))
	assert.Empty(t, data.String(), "提示消息不写入数据输出")
	for _, want := range []string{"deployed", "connecting", "careful", "boom"} {
		assert.Contains(t, logs.String(), want)
	}

	logs.Reset()
	f.SetSilent(true)
	f.PrintSuccess("hidden")
	f.PrintError(errors.New("still shown"))
	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), "still shown")

	require.NoError(t, f.Print("result"))
	assert.Equal(t, "result\n", data.String(), "静默模式仍输出结果")
}
