/*
 * Copyright (C) 2024-2026 The asynckit authors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package field

import (
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	word := faker.Word()
	ptr := ToOptional(word)
	require.NotNil(t, ptr)
	assert.Equal(t, word, *ptr)
	assert.Equal(t, word, Optional(ptr, faker.Sentence()))

	fallback := faker.Sentence()
	assert.Equal(t, fallback, Optional[string](nil, fallback))
}

func TestOptionalTyped(t *testing.T) {
	assert.Equal(t, "value", OptionalString(ToOptionalString("value"), "default"))
	assert.Equal(t, "default", OptionalString(nil, "default"))
	assert.Equal(t, 42, OptionalInt(ToOptionalInt(42), 0))
	assert.Equal(t, -1, OptionalInt(nil, -1))
	assert.True(t, OptionalBool(ToOptionalBool(true), false))
	assert.False(t, OptionalBool(nil, false))
	assert.Equal(t, time.Second, OptionalDuration(ToOptionalDuration(time.Second), time.Minute))
	assert.Equal(t, time.Minute, OptionalDuration(nil, time.Minute))
}

func TestOptionalAny(t *testing.T) {
	v := ToOptionalAny(55)
	require.NotNil(t, v)
	assert.Equal(t, 55, OptionalAny(v, nil))
	assert.Nil(t, OptionalAny(nil, nil))
}
