package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color string

var (
	red   = New(color("RED"))
	green = New(color("GREEN"))
)

func TestToEnum(t *testing.T) {
	value, err := ToEnum[color]("RED")
	require.NoError(t, err)
	require.Equal(t, red, value)

	value, err = ToEnum[color]("GREEN")
	require.NoError(t, err)
	require.Equal(t, green, value)

	_, err = ToEnum[color]("BLUE")
	require.Error(t, err)
}

type unregistered string

func TestToEnum_unknownType(t *testing.T) {
	_, err := ToEnum[unregistered]("anything")
	require.Error(t, err)
}
