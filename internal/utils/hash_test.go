// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func expectedHMAC(data []byte, key string) []byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return mac.Sum(nil)
}

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"login":"me","password":"p1"}`)

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")
	assert.Equal(t, expectedHMAC(data, testHashKey), sum1)
	assert.Equal(t, hex.EncodeToString(sum1), h.HexSum(data))
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")

	assert.NotEqual(t, NewHasher("key-one").HexSum(data), NewHasher("key-two").HexSum(data))
}

func TestHasher_Equal(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")

	assert.True(t, h.Equal(data, h.HexSum(data)))
	assert.False(t, h.Equal([]byte("tampered"), h.HexSum(data)))
	assert.False(t, h.Equal(data, "not-hex"))
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.HexSum([]byte("same"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.HexSum([]byte("same")))
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	want := hex.EncodeToString(expectedHMAC([]byte("data"), testHashKey))

	assert.Equal(t, want, HashString("data", testHashKey))
	assert.Equal(t, NewHasher(testHashKey).HexSum([]byte("data")), HashString("data", testHashKey))
}
