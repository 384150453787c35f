package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveDraftValidation(t *testing.T) {
	ctx := context.Background()

	// 校验失败发生在任何Redis访问之前
	t.Run("未知kind被拒绝", func(t *testing.T) {
		_, err := SaveDraft(ctx, Draft{Kind: "pit", TeamNumber: 254})
		assert.ErrorIs(t, err, ErrInvalidDraft)
	})

	t.Run("非正的队伍编号被拒绝", func(t *testing.T) {
		_, err := SaveDraft(ctx, Draft{Kind: KindTeam, TeamNumber: 0})
		assert.ErrorIs(t, err, ErrInvalidDraft)
	})

	t.Run("比赛草稿必须带场次", func(t *testing.T) {
		_, err := SaveDraft(ctx, Draft{Kind: KindMatch, TeamNumber: 254})
		assert.ErrorIs(t, err, ErrInvalidDraft)
	})
}
