package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ddirect/kontainer/bounded"
	"github.com/stretchr/testify/assert"
)

func run(args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func Test_Defaults(t *testing.T) {
	stdout, _, err := run()
	assert.NoError(t, err)
	assert.Equal(t, "1\ncat\n", stdout)
}

func Test_Flags(t *testing.T) {
	stdout, _, err := run("--floats", "2.5,-0.5,7", "--strings", "pear,apple,fig")
	assert.NoError(t, err)
	assert.Equal(t, "-0.5\napple\n", stdout)
}

func Test_EmptyList(t *testing.T) {
	stdout, stderr, err := run("--strings", "")
	assert.ErrorIs(t, err, bounded.ErrEmpty)
	assert.Equal(t, "1\n", stdout)
	assert.Contains(t, stderr, "string container")
}

func Test_DroppedLogged(t *testing.T) {
	values := make([]string, bounded.Capacity+5)
	for i := range values {
		values[i] = fmt.Sprint(i + 10)
	}
	// -1 comes after the capacity is reached and must not be the minimum
	values = append(values, "-1")

	stdout, stderr, err := run("-v", "--floats", strings.Join(values, ","))
	assert.NoError(t, err)
	assert.Equal(t, "10\ncat\n", stdout)
	assert.Contains(t, stderr, "dropped=6")
}

func Test_UnexpectedArgs(t *testing.T) {
	_, _, err := run("extra")
	assert.Error(t, err)
}
