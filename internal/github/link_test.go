package github

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPageUrl(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "next only",
			values: []string{`<https://api.github.com/user/583231/gists?per_page=100&page=2>; rel="next"`},
			want:   "https://api.github.com/user/583231/gists?per_page=100&page=2",
		},
		{
			name:   "next among others",
			values: []string{`<https://api.github.com/x?page=1>; rel="prev", <https://api.github.com/x?page=3>; rel="next", <https://api.github.com/x?page=9>; rel="last"`},
			want:   "https://api.github.com/x?page=3",
		},
		{
			name:   "last page",
			values: []string{`<https://api.github.com/user/583231/gists?per_page=100&page=1>; rel="prev"`},
			want:   "",
		},
		{
			name:   "several link headers",
			values: []string{`<https://a/?page=1>; rel="first"`, `<https://a/?page=2>; rel="next"`},
			want:   "https://a/?page=2",
		},
		{
			name:   "multiple relation types",
			values: []string{`<https://a/?page=2>; title="x"; rel="last next"`},
			want:   "https://a/?page=2",
		},
		{
			name:   "unquoted rel",
			values: []string{`<https://a/?page=2>; rel=next`},
			want:   "https://a/?page=2",
		},
		{
			name:   "malformed target",
			values: []string{`https://a/?page=2; rel="next"`},
			want:   "",
		},
		{
			name:   "no params",
			values: []string{`<https://a/?page=2>`},
			want:   "",
		},
		{
			name: "no header",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for _, v := range tt.values {
				header.Add("Link", v)
			}
			assert.Equal(t, tt.want, nextPageUrl(header))
		})
	}
}
