package api

import (
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestApplyCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx)

	assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Equal(t, corsAllowMethods, string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")))
	assert.Equal(t, corsAllowHeaders, string(ctx.Response.Header.Peek("Access-Control-Allow-Headers")))
}
