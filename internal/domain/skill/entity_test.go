package skill

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want List
	}{
		{name: "array", in: `["Python", " SQL ", ""]`, want: List{"Python", "SQL"}},
		{name: "comma string", in: `"Python,SQL, Docker"`, want: List{"Python", "SQL", "Docker"}},
		{name: "empty string", in: `""`, want: List{}},
		{name: "null", in: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got struct {
				Skills List `json:"skills"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"skills":`+tt.in+`}`), &got))
			if tt.want == nil {
				assert.Empty(t, got.Skills)
				return
			}
			assert.Equal(t, tt.want, got.Skills)
		})
	}
}

func TestList_StringAndArrayAgree(t *testing.T) {
	var a, b List
	require.NoError(t, json.Unmarshal([]byte(`"Go,Kubernetes"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`["Go","Kubernetes"]`), &b))
	assert.Equal(t, a, b)
}

func TestList_UnmarshalRejectsNumbers(t *testing.T) {
	var l List
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
}

func TestList_MarshalNilAsArray(t *testing.T) {
	b, err := json.Marshal(struct {
		Skills List `json:"skills"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[]}`, string(b))
}

func TestKeyAndHas(t *testing.T) {
	assert.Equal(t, "machine learning", Key("  Machine   Learning "))
	l := List{"Python", "Machine Learning"}
	assert.True(t, l.Has("python"))
	assert.True(t, l.Has("machine  learning"))
	assert.False(t, l.Has("Go"))
	assert.Len(t, List{"Go", "go", "GO"}.Set(), 1)
}
