package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// 客户端传来的日期可能是完整时间戳，情绪和语言也没有长度限制，这些列都不能用定长类型
func TestFreeFormColumnsAreText(t *testing.T) {
	cases := []struct {
		model  any
		fields []string
	}{
		{&JournalEntry{}, []string{"Date", "Mood", "Language"}},
		{&MoodHistory{}, []string{"Date", "Mood"}},
		{&DailyTip{}, []string{"Date", "Mood", "Language"}},
		{&User{}, []string{"Language"}},
	}
	cache := &sync.Map{}
	for _, tc := range cases {
		s, err := schema.Parse(tc.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		for _, name := range tc.fields {
			field := s.LookUpField(name)
			require.NotNil(t, field, "%s.%s", s.Name, name)
			assert.Equal(t, "text", field.TagSettings["TYPE"], "%s.%s", s.Name, name)
			// MySQL 的 TEXT 列不允许默认值
			assert.Empty(t, field.TagSettings["DEFAULT"], "%s.%s", s.Name, name)
		}
	}
}
