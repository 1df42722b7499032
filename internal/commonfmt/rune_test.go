package commonfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtRune(t *testing.T) {
	assert.Equal(t, "'a'", FmtRune('a'))
	assert.Equal(t, "'7'", FmtRune('7'))
	assert.Equal(t, "'é'", FmtRune('é'))
	assert.Equal(t, `'\n'`, FmtRune('\n'))
	assert.Equal(t, `'\''`, FmtRune('\''))
	assert.Equal(t, `'\\'`, FmtRune('\\'))
}

func TestFmtText(t *testing.T) {
	assert.Equal(t, `"3"`, FmtText("3"))
	assert.Equal(t, `""`, FmtText(""))
	assert.Equal(t, `"a\"b"`, FmtText(`a"b`))
	assert.Equal(t, `"a\nb"`, FmtText("a\nb"))
}
