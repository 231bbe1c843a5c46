package flogging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitFromSpec(t *testing.T) {
	defer Reset()

	assert.Equal(t, "INFO", InitFromSpec(""))
	assert.Equal(t, "DEBUG", InitFromSpec("debug"))
	assert.Equal(t, "DEBUG", GetModuleLevel("anything"))

	assert.Equal(t, "WARNING", InitFromSpec("a,b=error:warning"))
	assert.Equal(t, "ERROR", GetModuleLevel("a"))
	assert.Equal(t, "ERROR", GetModuleLevel("b"))
	assert.Equal(t, "WARNING", GetModuleLevel("c"))

	assert.Equal(t, DefaultLevel(), InitFromSpec("nonsense"))
}

func TestSetModuleLevel(t *testing.T) {
	defer Reset()

	MustGetLogger("tree")
	l, err := SetModuleLevel("tree", "critical")
	assert.NoError(t, err)
	assert.Equal(t, "CRITICAL", l)
	assert.Equal(t, "CRITICAL", GetModuleLevel("tree"))

	_, err = SetModuleLevel("tree", "loud")
	assert.Error(t, err)
	assert.Equal(t, "CRITICAL", GetModuleLevel("tree"))
}

func TestOutput(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	InitBackend(SetFormat("[%{module}] %{level} %{message}"), &buf)
	InitFromSpec("info")
	log := MustGetLogger("out")
	log.Debug("hidden")
	log.Infof("shown %d", 1)
	assert.Equal(t, "[out] INFO shown 1\n", buf.String())
}
