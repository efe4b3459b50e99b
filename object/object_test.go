/*
File    : monkey/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHashKey_SameContentSameKey(t *testing.T) {
	hello1 := &String{Value: "Hello World"}
	hello2 := &String{Value: "Hello World"}
	diff1 := &String{Value: "My name is johnny"}
	diff2 := &String{Value: "My name is johnny"}

	assert.Equal(t, hello1.HashKey(), hello2.HashKey())
	assert.Equal(t, diff1.HashKey(), diff2.HashKey())
	assert.NotEqual(t, hello1.HashKey(), diff1.HashKey())
}

func TestHashKey_TypeTagPreventsCrossTypeCollision(t *testing.T) {
	// An Integer and a Boolean with coincidentally identical backing
	// numbers must never hash equal — the type tag guards against it.
	one := &Integer{Value: 1}
	yes := &Boolean{Value: true}

	assert.NotEqual(t, one.HashKey(), yes.HashKey())

	zero := &Integer{Value: 0}
	no := &Boolean{Value: false}
	assert.NotEqual(t, zero.HashKey(), no.HashKey())
}

func TestEnvironment_SnapshotIsolatesLaterRebinding(t *testing.T) {
	env := NewEnvironment()
	env.Set("x", &Integer{Value: 1})

	snap := env.Snapshot()

	env.Set("x", &Integer{Value: 99})

	got, ok := snap.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.(*Integer).Value)

	live, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(99), live.(*Integer).Value)
}

func TestEnvironment_OuterChainLookup(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("a", &Integer{Value: 10})

	inner := NewEnclosedEnvironment(outer)
	inner.Set("b", &Integer{Value: 20})

	a, ok := inner.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(10), a.(*Integer).Value)

	_, ok = outer.Get("b")
	assert.False(t, ok)
}
