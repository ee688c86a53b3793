// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/visit/internal/gen"
)

const zooSource = `package zoo

type Cat struct{ Name string }

type Dog struct{ Name string }
`

// zooDir creates a package inside this module, so the generated file's
// import of the runtime package resolves.
func zooDir(t *testing.T) string {
	t.Helper()
	require.NoError(t, os.MkdirAll("testdata", 0o755))
	dir, err := os.MkdirTemp("testdata", "zoo-")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zoo.go"), []byte(zooSource), 0o644))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInlineInvalid(t *testing.T) {
	_, err := run(t, "generate", "--name", "Pet")
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	_, err = run(t, "list", "--name", "Pet", "--types", "Cat,Cat")
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)
}

func TestInlineFlagsRequireName(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"generate", "-C", dir, "--types", "Cat,Dog"},
		{"check", "-C", dir, "--accept", "AcceptPet"},
		{"list", "-C", dir, "-o", "pets_gen.go"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, gen.ErrInvalidConfig, "%v", args)
		assert.NotErrorIs(t, err, os.ErrNotExist, "%v", args)
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "list", "-C", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnexpectedArgs(t *testing.T) {
	_, err := run(t, "check", "extra")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := zooDir(t)

	out, err := run(t, "list", "-C", dir, "--name", "Pet", "--types", "Cat,Dog")
	require.NoError(t, err)
	assert.Contains(t, out, "zoo")
	assert.Contains(t, out, "VisitCat")
	assert.Contains(t, out, "VisitDog")
	assert.Contains(t, out, "AcceptPet")
}

func TestGenerateAndCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := zooDir(t)
	flags := []string{"-C", dir, "--name", "Pet", "--types", "Cat,Dog"}

	_, err := run(t, append([]string{"check"}, flags...)...)
	require.ErrorIs(t, err, gen.ErrStale)

	out, err := run(t, append([]string{"generate"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, gen.DefaultOutput)

	src, err := os.ReadFile(filepath.Join(dir, gen.DefaultOutput))
	require.NoError(t, err)
	assert.Contains(t, string(src), "type PetVisitor interface")

	out, err = run(t, append([]string{"check"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Up to date")

	// A different registry order renders a different file.
	_, err = run(t, "check", "-C", dir, "--name", "Pet", "--types", "Dog,Cat")
	assert.ErrorIs(t, err, gen.ErrStale)
}

func TestConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := zooDir(t)
	yaml := "output: pets_gen.go\nregistries:\n  - name: Pet\n    types: [Dog]\n    visit_prefix: On\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pets.yaml"), []byte(yaml), 0o644))

	_, err := run(t, "generate", "-C", dir)
	require.ErrorIs(t, err, os.ErrNotExist, "default config file is absent")

	t.Setenv(EnvPrefix+"_CONFIG", "pets.yaml")
	out, err := run(t, "generate", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "pets_gen.go")

	src, err := os.ReadFile(filepath.Join(dir, "pets_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "OnDog(*Dog)")
}
