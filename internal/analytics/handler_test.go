package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTeamNumbers(t *testing.T) {
	t.Run("逗号分隔的编号列表", func(t *testing.T) {
		assert.Equal(t, []int{254, 971}, parseTeamNumbers("254,971"))
	})

	t.Run("允许片段带空白", func(t *testing.T) {
		assert.Equal(t, []int{254, 971}, parseTeamNumbers(" 254 , 971 "))
	})

	t.Run("无法解析的片段静默丢弃", func(t *testing.T) {
		assert.Equal(t, []int{254}, parseTeamNumbers("254,abc,"))
	})

	t.Run("空字符串得到nil", func(t *testing.T) {
		assert.Nil(t, parseTeamNumbers(""))
	})
}
