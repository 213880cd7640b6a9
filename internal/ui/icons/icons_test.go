package icons_test

import (
	"context"
	"testing"

	"github.com/goamaan/site/internal/ui/icons"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	got, err := markup.String(context.Background(), icons.Sized(icons.Message, 20))
	require.NoError(t, err)
	assert.Equal(t,
		`<svg class="icon icon-message" width="20" height="20" aria-hidden="true"><use href="/static/icons.svg#message"></use></svg>`,
		got)
}
