package lupin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adnxy/react-native-lupin/internal/cache"
	"github.com/adnxy/react-native-lupin/internal/engine"
)

func TestBuildRegistryEnable(t *testing.T) {
	r, err := buildRegistry("eval_usage, aws_access_key", "")
	require.NoError(t, err)
	require.Equal(t, []string{"eval_usage", "aws_access_key"}, r.IDs())
}

func TestBuildRegistryDisable(t *testing.T) {
	full, err := buildRegistry("", "")
	require.NoError(t, err)
	r, err := buildRegistry("", "eval_usage")
	require.NoError(t, err)
	require.Equal(t, full.Len()-1, r.Len())
	_, ok := r.Lookup("eval_usage")
	require.False(t, ok)
}

func TestBuildRegistryUnknownID(t *testing.T) {
	_, err := buildRegistry("no_such_rule", "")
	require.Error(t, err)
	_, err = buildRegistry("", "no_such_rule")
	require.Error(t, err)
}

func TestBuildRegistryEnableWinsOverDisable(t *testing.T) {
	r, err := buildRegistry("eval_usage", "eval_usage")
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())
}

func TestSplitIDs(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitIDs(" a ,, b "))
	require.Nil(t, splitIDs(""))
}

func TestAllUnchanged(t *testing.T) {
	data := []byte("var x = 1;")
	db := cache.DB{Entries: map[string]string{"/a.js": cache.Hash(data)}}
	inputs := []engine.Input{{Name: "/a.js", Data: data}}
	require.True(t, allUnchanged(db, inputs))

	inputs = append(inputs, engine.Input{Name: "/b.js", Data: []byte("new")})
	require.False(t, allUnchanged(db, inputs))
}

func TestOrDefault(t *testing.T) {
	require.Equal(t, "medium", orDefault("", "medium"))
	require.Equal(t, "high", orDefault("high", "medium"))
}

func TestPickHelpers(t *testing.T) {
	s := "local"
	require.Equal(t, "cli", pickString("cli", &s, nil))
	require.Equal(t, "local", pickString("", &s, nil))
	require.Equal(t, "", pickString("", nil, nil))

	n := 7
	require.Equal(t, 3, pickInt(3, &n, nil))
	require.Equal(t, 7, pickInt(0, &n, nil))

	b := true
	require.True(t, pickBool(false, &b, nil))
	require.False(t, pickBool(false, nil, nil))
}
