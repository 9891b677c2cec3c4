package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProjectTypes(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []ProjectType
	}{
		{
			name: "simple list",
			csv:  "kitchen,bathroom",
			want: []ProjectType{ProjectTypeKitchen, ProjectTypeBathroom},
		},
		{
			name: "mixed case and whitespace",
			csv:  " Kitchen , BATHROOM ,flooring",
			want: []ProjectType{ProjectTypeKitchen, ProjectTypeBathroom, ProjectTypeFlooring},
		},
		{
			name: "duplicates collapse keeping order",
			csv:  "kitchen,bathroom,kitchen",
			want: []ProjectType{ProjectTypeKitchen, ProjectTypeBathroom},
		},
		{
			name: "empty tokens dropped",
			csv:  ",kitchen,,  ,bathroom,",
			want: []ProjectType{ProjectTypeKitchen, ProjectTypeBathroom},
		},
		{
			name: "empty input",
			csv:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseProjectTypes(tt.csv))
		})
	}
}

func TestProjectTypeIsValid(t *testing.T) {
	assert.True(t, ProjectTypeKitchen.IsValid())
	assert.True(t, NormalizeProjectType(" HVAC ").IsValid())
	assert.False(t, ProjectType("landscaping").IsValid())
	assert.False(t, ProjectType("").IsValid())
}
