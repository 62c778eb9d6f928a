package ssh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermFromEnviron(t *testing.T) {
	assert.Equal(t, "screen-256color", TermFromEnviron([]string{"LANG=C", "TERM=screen-256color"}))
	assert.Equal(t, DefaultTerm, TermFromEnviron([]string{"LANG=C"}))
	assert.Equal(t, DefaultTerm, TermFromEnviron([]string{"TERM="}))
	assert.Equal(t, DefaultTerm, TermFromEnviron(nil))
}
