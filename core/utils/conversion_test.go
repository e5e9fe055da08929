package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	assert.Equal(t, "dQw4w9WgXcQ", Field("dQw4w9WgXcQ", "videoId"))
	assert.Equal(t, "dQw4w9WgXcQ", Field(map[string]any{"kind": "youtube#video", "videoId": "dQw4w9WgXcQ"}, "videoId"))
	assert.Equal(t, "", Field(map[string]any{"kind": "youtube#channel"}, "videoId"))
	assert.Equal(t, "", Field(nil, "videoId"))
	assert.Equal(t, "1050118621198921728", Field(json.Number("1050118621198921728"), "id"))
	assert.Equal(t, "220", Field(map[string]any{"id": float64(220)}, "id"), "whole floats keep their digits")
	assert.Equal(t, "2.5", Field(2.5, "id"))
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "http://cdn.example.com/a.png", AbsoluteURL("//cdn.example.com/a.png", "http"))
	assert.Equal(t, "https://x.com/a", AbsoluteURL("https://x.com/a", "http"))

	assert.True(t, Relative("/images/a.png"))
	assert.False(t, Relative("//cdn.example.com/a.png"))
	assert.False(t, Relative("https://x.com/a"))
}
