package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"c": 3}

	all := map[string]int{}
	for key, value := range IterSeq2Concat(maps.All(a), maps.All(b)) {
		all[key] = value
	}
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, all)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}
