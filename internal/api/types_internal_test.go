package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureURL(t *testing.T) {
	assert.Equal(t, "", secureURL(""))
	assert.Equal(t, "https://img.example.com/a.jpg", secureURL("http://img.example.com/a.jpg"))
	assert.Equal(t, "https://img.example.com/a.jpg", secureURL("https://img.example.com/a.jpg"))
	assert.Equal(t, "/static/a.jpg", secureURL("/static/a.jpg"))
}
