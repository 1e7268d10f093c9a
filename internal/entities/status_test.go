package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitionAllowsAnyRole(t *testing.T) {
	open := StatusTransition{AllowedRoles: nil}
	assert.True(t, open.AllowsAnyRole([]string{"tailor"}), "edge without roles is open to everyone")
	assert.True(t, open.AllowsAnyRole(nil))

	restricted := StatusTransition{AllowedRoles: []string{"staff", "admin"}}
	assert.True(t, restricted.AllowsAnyRole([]string{"staff"}))
	assert.True(t, restricted.AllowsAnyRole([]string{"tailor", "admin"}))
	assert.False(t, restricted.AllowsAnyRole([]string{"tailor"}))
	assert.False(t, restricted.AllowsAnyRole(nil))
}
