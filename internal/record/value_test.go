package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueUnmarshal(t *testing.T) {
	t.Run("数值", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(`12.5`), &v))
		assert.Equal(t, NumberValue(12.5), v)
	})

	t.Run("文本", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(`"Swerve"`), &v))
		assert.Equal(t, TextValue("Swerve"), v)
	})

	t.Run("null", func(t *testing.T) {
		var v Value
		require.NoError(t, json.Unmarshal([]byte(`null`), &v))
		assert.True(t, v.IsNull())
	})

	t.Run("联合类型之外的形态折叠为null", func(t *testing.T) {
		for _, raw := range []string{`true`, `false`, `[1,2]`, `{"a":1}`} {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(raw), &v), raw)
			assert.True(t, v.IsNull(), raw)
		}
	})
}

func TestValueMapScan(t *testing.T) {
	t.Run("从JSON文本列恢复", func(t *testing.T) {
		var m ValueMap
		require.NoError(t, m.Scan(`{"auto_score":12,"defense_grade":"B","note":null}`))
		assert.Equal(t, NumberValue(12), m["auto_score"])
		assert.Equal(t, TextValue("B"), m["defense_grade"])
		assert.True(t, m["note"].IsNull())
	})

	t.Run("缺失的key取值为null", func(t *testing.T) {
		var m ValueMap
		require.NoError(t, m.Scan(`{}`))
		assert.True(t, m["anything"].IsNull())
	})

	t.Run("损坏的列退化为空映射", func(t *testing.T) {
		var m ValueMap
		require.NoError(t, m.Scan("not json"))
		assert.Empty(t, m)
	})
}
