package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestModule(t *testing.T) {
	assert.NotNil(t, Module)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
