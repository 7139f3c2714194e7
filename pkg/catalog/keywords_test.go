package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterLatinKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "mixed scripts",
			keywords: []string{"api", "자동화", "cron"},
			want:     []string{"api", "cron"},
		},
		{
			name:     "digits and punctuation survive",
			keywords: []string{"web3", "ci/cd", "k8s"},
			want:     []string{"web3", "ci/cd", "k8s"},
		},
		{
			name:     "accented latin survives",
			keywords: []string{"café", "naïve"},
			want:     []string{"café", "naïve"},
		},
		{
			name:     "cjk and hangul dropped",
			keywords: []string{"日本語", "한국어", "ok"},
			want:     []string{"ok"},
		},
		{
			name:     "empty input",
			keywords: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLatinKeywords(tt.keywords)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}
