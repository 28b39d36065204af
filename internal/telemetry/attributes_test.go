// SPDX-License-Identifier: MIT
package telemetry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestHTTPAttributes(t *testing.T) {
	attrs := HTTPAttributes("GET", "/shows", "/shows?", 200)

	want := map[attribute.Key]attribute.Value{
		HTTPMethodKey:     attribute.StringValue("GET"),
		HTTPRouteKey:      attribute.StringValue("/shows"),
		HTTPURLKey:        attribute.StringValue("/shows?"),
		HTTPStatusCodeKey: attribute.IntValue(200),
	}

	assert.Len(t, attrs, len(want))
	for _, attr := range attrs {
		assert.Equal(t, want[attr.Key], attr.Value, "key %s", attr.Key)
	}
}

func TestErrorAttributes(t *testing.T) {
	attrs := ErrorAttributes(errors.New("boom"), "timeout")

	assert.Len(t, attrs, 2)
	assert.Equal(t, attribute.Bool(ErrorKey, true), attrs[0])
	assert.Equal(t, attribute.String(ErrorTypeKey, "timeout"), attrs[1])
}
