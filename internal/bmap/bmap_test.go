package bmap

import (
	"testing"

	. "github.com/hansoksendahl/cowbird/internal/test"
)

func TestEmptyMap(t *testing.T) {
	m := New[int](1)
	ExpectInt(t, 0, m.Len())

	en, found := m.Get([]byte{})
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)

	en, found = m.Get([]byte{1, 2, 3})
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)
}

func TestEmptyKey(t *testing.T) {
	m := New[int](1)
	empty := []byte{}

	m.Set([]byte("foo"), 123)
	en, found := m.Get(empty)
	ExpectInt(t, 0, en)
	ExpectBool(t, false, found)

	m.Set(empty, 345)
	en, found = m.Get(empty)
	ExpectInt(t, 345, en)
	ExpectBool(t, true, found)
	ExpectInt(t, 2, m.Len())
}

func TestKey(t *testing.T) {
	m := New[int](2)
	key := []byte{1, 2, 3}
	key2 := []byte{1, 2}

	m.Set(key, 111)
	m.Set(key2, 222)

	en, found := m.Get(key)
	ExpectInt(t, 111, en)
	ExpectBool(t, true, found)

	key = key[:2]
	en, found = m.Get(key)
	ExpectInt(t, 222, en)
	ExpectBool(t, true, found)
}

func TestRewrite(t *testing.T) {
	m := New[int](1)
	key := []byte("state")

	m.Set(key, 1)
	m.Set(key, 2)
	ExpectInt(t, 1, m.Len())

	en, found := m.Get(key)
	ExpectInt(t, 2, en)
	ExpectBool(t, true, found)
}

func TestKeyCopied(t *testing.T) {
	m := New[int](1)
	key := []byte{7, 8}

	m.Set(key, 11)
	key[0] = 9

	_, found := m.Get(key)
	ExpectBool(t, false, found)
	en, found := m.Get([]byte{7, 8})
	ExpectInt(t, 11, en)
	ExpectBool(t, true, found)
}
