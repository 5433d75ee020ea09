// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "testing"

func TestFooterRender(t *testing.T) {
	tests := []struct {
		name   string
		footer footer
		index  int
		page   int
		want   string
	}{
		{
			name:   "disabled renders nothing",
			footer: footer{enabled: false, template: "{subject}", subject: "Biology"},
			want:   "",
		},
		{
			name:   "subject and lesson",
			footer: footer{enabled: true, template: "{subject} • {lesson}", subject: "Biology", lesson: "Cells"},
			want:   "Biology • Cells",
		},
		{
			name:   "unit aliases lesson",
			footer: footer{enabled: true, template: "{subject} / {unit}", subject: "Math", lesson: "Unit 3"},
			want:   "Math / Unit 3",
		},
		{
			name:   "index and page",
			footer: footer{enabled: true, template: "card {index} p{page}"},
			index:  17,
			page:   3,
			want:   "card 17 p3",
		},
		{
			name:   "unknown placeholder falls back to subject lesson",
			footer: footer{enabled: true, template: "{subjcet} • {lesson}", subject: "Biology", lesson: "Cells"},
			want:   "Biology Cells",
		},
		{
			name:   "fallback trims missing fields",
			footer: footer{enabled: true, template: "{bogus}", subject: "Biology"},
			want:   "Biology",
		},
		{
			name:   "plain template passes through",
			footer: footer{enabled: true, template: "study set"},
			want:   "study set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.footer.render(tt.index, tt.page)
			if got != tt.want {
				t.Errorf("render(%d, %d) = %q, want %q", tt.index, tt.page, got, tt.want)
			}
		})
	}
}
