package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBookID(t *testing.T) {
	ctx := WithBookID(context.Background(), "dune")

	assert.Equal(t, "dune", GetBookID(ctx))
}

func TestWithView(t *testing.T) {
	ctx := WithView(context.Background(), "detail")

	assert.Equal(t, "detail", GetView(ctx))
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetBookID(ctx))
	assert.Empty(t, GetView(ctx))
}

func TestBothValues(t *testing.T) {
	ctx := WithBookID(context.Background(), "solaris")
	ctx = WithView(ctx, "grid")

	assert.Equal(t, "solaris", GetBookID(ctx))
	assert.Equal(t, "grid", GetView(ctx))
}
