package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPageGroups(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  []PageGroup
	}{
		{
			name: "id change starts a new group",
			pages: []string{
				"Invoice # 100\nWidgets",
				"continued, no header",
				"Invoice # 100\nrepeated header",
				"Invoice # 200\nnew invoice",
				"overflow of 200",
			},
			want: []PageGroup{{1, 2, 3}, {4, 5}},
		},
		{
			name:  "single invoice across all pages",
			pages: []string{"Order No: 555", "", "Order No: 555"},
			want:  []PageGroup{{1, 2, 3}},
		},
		{
			name:  "first page without id still starts the first group",
			pages: []string{"cover sheet", "Invoice # 42"},
			want:  []PageGroup{{1}, {2}},
		},
		{
			name:  "inverted label format",
			pages: []string{"1203379346 Order Number", "1203379347 Order Number"},
			want:  []PageGroup{{1}, {2}},
		},
		{
			name:  "noisy prefix variant",
			pages: []string{"ORDERED perof1377184", "ORDERED perof1377185"},
			want:  []PageGroup{{1}, {2}},
		},
		{
			name:  "every page a distinct invoice",
			pages: []string{"Invoice: 1", "Invoice: 2", "Invoice: 3"},
			want:  []PageGroup{{1}, {2}, {3}},
		},
		{
			name:  "no pages",
			pages: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPageGroups(tt.pages)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The union of all output groups must equal the full page range exactly,
// regardless of where identifiers appear.
func TestDetectPageGroupsCoversEveryPageOnce(t *testing.T) {
	pages := []string{
		"Invoice # 7",
		"no id here",
		"Invoice # 8",
		"",
		"Invoice # 8",
		"Invoice # 9",
	}
	groups := DetectPageGroups(pages)

	var flat []int
	for _, grp := range groups {
		flat = append(flat, grp...)
	}
	require.Len(t, flat, len(pages))
	for i, page := range flat {
		assert.Equal(t, i+1, page)
	}
	require.NoError(t, ValidateGroups(groups, len(pages)))
}

func TestValidateGroups(t *testing.T) {
	assert.NoError(t, ValidateGroups([]PageGroup{{1, 2}, {3}}, 3))

	err := ValidateGroups([]PageGroup{{1, 3}}, 3)
	assert.ErrorContains(t, err, "not consecutive")

	err = ValidateGroups([]PageGroup{{1, 2}, {2, 3}}, 3)
	assert.ErrorContains(t, err, "more than one group")

	err = ValidateGroups([]PageGroup{{1, 2, 3, 4}}, 3)
	assert.ErrorContains(t, err, "out of range")

	err = ValidateGroups([]PageGroup{{0, 1}}, 3)
	assert.ErrorContains(t, err, "out of range")
}

func TestGroupFilename(t *testing.T) {
	assert.Equal(t, "inv-page3.pdf", GroupFilename("inv", PageGroup{3}))
	assert.Equal(t, "inv-page1-2.pdf", GroupFilename("inv", PageGroup{1, 2}))
}
