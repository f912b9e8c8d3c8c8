package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyIsNamespaced(t *testing.T) {
	require.Equal(t, "sgi:gateway:reflist:catalogues", Key("reflist", "catalogues"))
	require.Equal(t, "sgi:gateway:single", Key("single"))
}
